package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/PixPMusic/lumamap/internal/config"
	"github.com/PixPMusic/lumamap/internal/emitter"
	"github.com/PixPMusic/lumamap/internal/layout"
	"github.com/PixPMusic/lumamap/internal/logging"
	"github.com/PixPMusic/lumamap/internal/midi"
	"github.com/PixPMusic/lumamap/internal/preview"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries flag values and shared state between commands
type app struct {
	configPath string
	verbose    bool
	ccMode      bool
	fingerprint bool
	tuningName  string

	cfg    *config.Config
	logger *zap.Logger

	// newScreen is replaced in tests
	newScreen func() (tcell.Screen, error)
}

// ignoreUnknown makes a command accept any flag or argument it does not know
var ignoreUnknown = cobra.FParseErrWhitelist{UnknownFlags: true}

// NewRootCommand builds the lumamap command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{newScreen: tcell.NewScreen})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lumamap",
		Short: "Generate a 31-EDO key map for a five-board isomorphic keyboard",
		Long: `lumamap writes the per-board key configuration of a five-board
isomorphic keyboard tuned to 31 equal divisions of the octave.

Every key gets a lattice coordinate from the board's zig-zag row layout and a
color that marks its interval family, so the same pattern repeats across all
boards. The configuration is written to stdout.`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: ignoreUnknown,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.sync()
		},
		RunE: a.generate,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "JSON settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	root.Flags().BoolVar(&a.ccMode, "cc", false, "set every key to send continuous controllers")
	root.Flags().BoolVar(&a.fingerprint, "fingerprint", false, "print the UUID of the generated configuration to stderr")
	root.SetFlagErrorFunc(a.flagError)

	// Positional words never select cobra's built-in commands: "help" and
	// "completion" are ignored like any other argument.
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true

	tuningCmd := &cobra.Command{
		Use:   "tuning",
		Short: "Print the pitch of every key as MIDI note, bend and messages",
		Long: `Prints, for every board and key, the nearest MIDI note, the remaining
offset in semitones and the pitch bend + note-on messages that sound the key
on its board's channel with a 48 semitone bend range.`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: ignoreUnknown,
		RunE:               a.printTuning,
	}
	tuningCmd.Flags().StringVarP(&a.tuningName, "tuning", "t", "", "tuning system name")

	previewCmd := &cobra.Command{
		Use:                "preview",
		Short:              "Show the colored boards in the terminal (q or Esc to quit)",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: ignoreUnknown,
		RunE:               a.preview,
	}

	root.AddCommand(tuningCmd, previewCmd)
	return root
}

// Execute runs the command tree with the given context
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}

	if len(args) > 0 {
		a.logger.Debug("ignoring arguments", zap.Strings("args", args))
	}
	return nil
}

// flagError runs the command anyway when a flag value is malformed. Flags
// parsed before the bad one keep their values; the rest keep their defaults.
func (a *app) flagError(cmd *cobra.Command, ferr error) error {
	if cmd.RunE == nil {
		return nil
	}
	args := cmd.Flags().Args()
	if err := a.setup(cmd, args); err != nil {
		return err
	}
	defer a.sync()

	a.logger.Debug("ignoring malformed flag", zap.String("command", cmd.Name()), zap.Error(ferr))
	return cmd.RunE(cmd, args)
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) generate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("cc") {
		a.cfg.CCMode = a.ccMode
	}
	id, err := emitter.New(a.logger).Write(cmd.OutOrStdout(), emitter.Options{CCMode: a.cfg.CCMode})
	if err != nil {
		return err
	}
	if a.fingerprint {
		fmt.Fprintf(cmd.ErrOrStderr(), "fingerprint %s\n", id)
	}
	return nil
}

func (a *app) printTuning(cmd *cobra.Command, args []string) error {
	if a.tuningName != "" {
		a.cfg.Tuning = a.tuningName
	}
	sys, err := a.cfg.TuningSystem()
	if err != nil {
		return err
	}

	entries := midi.TuningTable(sys, emitter.Boards, emitter.FirstChannel, layout.Section())
	a.logger.Debug("computed tuning table", zap.String("tuning", sys.Name), zap.Int("entries", len(entries)))
	return midi.WriteTable(cmd.OutOrStdout(), sys, entries)
}

func (a *app) preview(cmd *cobra.Command, args []string) error {
	screen, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = preview.New(screen, layout.Section(), emitter.Boards, a.logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
