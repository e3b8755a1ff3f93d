package cli

import (
	"fmt"
	"io"

	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/profunctor"
	"github.com/authcorp/optics/record"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through lenses, prisms and composition on small records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug("running demo")
			return runDemo(a.streams.Out, a.useColor)
		},
	}
}

type demoPrinter struct {
	w       io.Writer
	heading *color.Color
	label   *color.Color
	value   *color.Color
}

func newDemoPrinter(w io.Writer, useColor bool) *demoPrinter {
	p := &demoPrinter{
		w:       w,
		heading: color.New(color.FgYellow, color.Bold),
		label:   color.New(color.FgBlue),
		value:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.heading, p.label, p.value} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *demoPrinter) section(title string) {
	fmt.Fprintln(p.w, p.heading.Sprint("== "+title+" =="))
}

func (p *demoPrinter) show(label string, v any) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Sprintf("%-22s", label+":"), p.value.Sprint(v))
}

func increment(n int) int { return n + 1 }

func double(f float64) float64 { return f * 2 }

func runDemo(w io.Writer, useColor bool) error {
	p := newDemoPrinter(w, useColor)

	steps := []func(*demoPrinter) error{
		demoCounter,
		demoNestedCounter,
		demoTextPrism,
		demoLensPrism,
	}
	for i, step := range steps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := step(p); err != nil {
			return err
		}
	}
	return nil
}

func demoCounter(p *demoPrinter) error {
	p.section("Lens on a record field")

	state := record.Of("counter", 0)
	counter := optics.Field[int]("counter")
	addCounter := counter(profunctor.Transform(increment))
	p.show("state", state)

	state1, err := profunctor.Run(addCounter, state)
	if err != nil {
		return err
	}
	state2, err := profunctor.Run(addCounter, state1)
	if err != nil {
		return err
	}
	p.show("after +1 twice", state2)

	got, err := profunctor.Collect[int](counter(profunctor.Getter[int]()), state2)
	if err != nil {
		return err
	}
	p.show("view counter", got)

	state3, err := profunctor.Run(counter(profunctor.Setter(5)), state2)
	if err != nil {
		return err
	}
	p.show("after set 5", state3)
	p.show("original state", state)
	return nil
}

func demoNestedCounter(p *demoPrinter) error {
	p.section("Composed lenses")

	state := record.Of("substate", record.Of("counter", 10))
	substate := optics.Field[record.Record]("substate")
	counter := optics.Field[int]("counter")
	p.show("state", state)

	state1, err := profunctor.Run(substate(counter(profunctor.Transform(increment))), state)
	if err != nil {
		return err
	}
	p.show("nested application", state1)

	state2, err := profunctor.Run(optics.Compose(substate, counter)(profunctor.Transform(increment)), state1)
	if err != nil {
		return err
	}
	p.show("composed application", state2)
	return nil
}

func demoTextPrism(p *demoPrinter) error {
	p.section("Prism on text")

	prism := optics.FloatText()
	for _, s := range []string{"1.2", "kissa"} {
		same, err := optics.Over(prism, s, functional.Identity[float64])
		if err != nil {
			return err
		}
		doubled, err := optics.Over(prism, s, double)
		if err != nil {
			return err
		}
		p.show(fmt.Sprintf("%q unchanged", s), fmt.Sprintf("%q", same))
		p.show(fmt.Sprintf("%q doubled", s), fmt.Sprintf("%q", doubled))
	}
	return nil
}

func demoLensPrism(p *demoPrinter) error {
	p.section("Lens composed with prism")

	strCounter := optics.Compose(optics.Field[any]("counter"), optics.Float())
	for _, state := range []record.Record{record.Of("counter", 3.14), record.Of("counter", "kissa")} {
		out, err := optics.Over(strCounter, state, double)
		if err != nil {
			return err
		}
		p.show("state", state)
		p.show("after doubling", out)
	}
	return nil
}
