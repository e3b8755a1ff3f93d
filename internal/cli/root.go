// Package cli implements the optics command line tool.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/authcorp/optics/internal/config"
	"github.com/authcorp/optics/internal/logging"
	"github.com/authcorp/optics/record"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// app is the state shared by all subcommands once configuration is loaded.
type app struct {
	streams  Streams
	cfg      *config.Config
	logger   *slog.Logger
	codec    *record.Codec
	useColor bool
}

// NewRootCommand builds the optics command tree bound to streams.
func NewRootCommand(streams Streams) *cobra.Command {
	a := &app{streams: streams}

	root := &cobra.Command{
		Use:   "optics",
		Short: "Inspect and update structured documents with lenses and prisms",
		Long: `optics reads a JSON, YAML, TOML or MessagePack document, focuses on a
field through a path such as "substate.counter:float" and prints or rewrites it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	root.PersistentFlags().String("config", "", "config file (default optics.yaml in . or $HOME/.config/optics)")
	root.PersistentFlags().String("format", "", "document format (json|yaml|toml|msgpack)")
	root.PersistentFlags().Bool("pretty", false, "indent encoded documents")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")

	root.AddCommand(a.viewCommand())
	root.AddCommand(a.setCommand())
	root.AddCommand(a.overCommand())
	root.AddCommand(a.demoCommand())

	return root
}

// Execute runs the command tree against the process streams and returns the
// process exit code.
func Execute(ctx context.Context, args []string) int {
	streams := StdStreams()
	root := NewRootCommand(streams)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		// The logger may not exist when configuration failed to load.
		writeError(streams.Err, err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("format") {
		cfg.Document.Format, _ = flags.GetString("format")
	}
	if flags.Changed("pretty") {
		cfg.Document.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	format, err := record.ParseFormat(cfg.Document.Format)
	if err != nil {
		return err
	}
	a.codec = record.NewCodec(format)
	if cfg.Document.Pretty {
		a.codec = a.codec.WithPretty()
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, a.streams.Err)
	a.useColor = cfg.Output.Color == "on" || (cfg.Output.Color == "auto" && isTerminal(a.streams.Out))

	a.logger.Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("format", string(format)),
		slog.Bool("color", a.useColor),
	)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
