package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/internal/query"
	"github.com/authcorp/optics/record"
	"github.com/spf13/cobra"
)

func (a *app) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <path> [file]",
		Short: "Print the value a path focuses on",
		Example: `  optics view substate.counter state.json
  cat state.yaml | optics --format yaml view counter:float`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.runView,
	}
}

func (a *app) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value> [file]",
		Short: "Replace the value a path focuses on and print the document",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  a.runSet,
	}
}

func (a *app) overCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "over <path> [file]",
		Short: "Apply an operation to the value a path focuses on and print the document",
		Example: `  optics over counter:float --op mul --arg 2 state.json
  optics over name --op upper state.yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.runOver,
	}
	cmd.Flags().String("op", "", "operation (add|mul|neg|not|upper|lower|trim)")
	cmd.Flags().String("arg", "", "operand for add and mul")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}

func (a *app) runView(cmd *cobra.Command, args []string) error {
	q, err := query.Parse(args[0])
	if err != nil {
		return err
	}
	doc, err := a.readDocument(args[1:])
	if err != nil {
		return err
	}

	v, found, err := q.View(doc)
	if err != nil {
		return fmt.Errorf("view %s: %w", q, err)
	}
	if !found {
		return errors.New(errors.ErrCodeFieldType, "value does not match prism").
			WithDetail("path", q.String())
	}

	a.logger.Debug("viewed", slog.String("path", q.String()))
	return a.printValue(v)
}

func (a *app) runSet(cmd *cobra.Command, args []string) error {
	q, err := query.Parse(args[0])
	if err != nil {
		return err
	}
	doc, err := a.readDocument(args[2:])
	if err != nil {
		return err
	}

	out, err := q.Set(doc, args[1])
	if err != nil {
		return fmt.Errorf("set %s: %w", q, err)
	}

	a.logger.Debug("set", slog.String("path", q.String()), slog.String("value", args[1]))
	return a.writeDocument(out)
}

func (a *app) runOver(cmd *cobra.Command, args []string) error {
	q, err := query.Parse(args[0])
	if err != nil {
		return err
	}
	name, err := cmd.Flags().GetString("op")
	if err != nil {
		return err
	}
	op, err := query.ParseOp(name)
	if err != nil {
		return err
	}
	arg, err := cmd.Flags().GetString("arg")
	if err != nil {
		return err
	}
	doc, err := a.readDocument(args[1:])
	if err != nil {
		return err
	}

	out, err := q.Over(doc, op, arg)
	if err != nil {
		return fmt.Errorf("over %s: %w", q, err)
	}

	a.logger.Debug("applied operation",
		slog.String("path", q.String()),
		slog.String("op", string(op)),
		slog.String("arg", arg),
	)
	return a.writeDocument(out)
}

// readDocument decodes the file named in args, or standard input when args
// is empty or "-".
func (a *app) readDocument(args []string) (record.Record, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(a.streams.In)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return record.Record{}, fmt.Errorf("failed to read document: %w", err)
	}
	return a.codec.Decode(data)
}

func (a *app) writeDocument(r record.Record) error {
	data, err := a.codec.Encode(r)
	if err != nil {
		return err
	}
	_, err = a.streams.Out.Write(data)
	return err
}

// printValue writes nested records as documents and scalars as one line.
func (a *app) printValue(v any) error {
	if r, ok := v.(record.Record); ok {
		return a.writeDocument(r)
	}
	_, err := fmt.Fprintln(a.streams.Out, v)
	return err
}

func writeError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
