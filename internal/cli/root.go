package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/passgen/internal/config"
	"github.com/idilsaglam/passgen/internal/generator"
	"github.com/idilsaglam/passgen/internal/logging"
	"github.com/idilsaglam/passgen/internal/model"
	"github.com/idilsaglam/passgen/internal/tui"
	"github.com/idilsaglam/passgen/internal/ui"
)

// session is what every command needs once config is resolved.
type session struct {
	cfg config.Config
	log *zap.Logger
	gen *generator.Generator
}

func (a App) newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords from a length and character classes",
		Long: `passgen opens a small form: type a length (4-16), pick the character
classes to include, and press Generate Password. The result can be copied with
ctrl+y. Use "passgen generate" for a non-interactive run.`,
		Example: `  passgen
  passgen --dark
  passgen generate -l 12 --upper --digits
  passgen generate -l 8 -c 5 --plain`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(v)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()
			return a.runScreen(cmd, s)
		},
	}
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default $XDG_CONFIG_HOME/passgen/config.yaml)")
	pf.String("random", generator.SourceMath, "random source: math or crypto")
	pf.String("log-file", "", "append JSON logs to this file")
	pf.Bool("dark", false, "start in dark mode")
	root.Flags().Bool("alt-screen", true, "use the terminal's alternate screen")
	root.Flags().Bool("print", false, "print the last generated password after quitting")

	bind(v, root, map[string]string{
		config.KeyConfig:    "config",
		config.KeyRandom:    "random",
		config.KeyLogFile:   "log-file",
		config.KeyDarkMode:  "dark",
		config.KeyAltScreen: "alt-screen",
		config.KeyPrint:     "print",
	})

	root.AddCommand(a.newGenerateCmd(v))
	return root
}

// bind maps viper keys onto flags of cmd (local or persistent).
func bind(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if f == nil {
			panic("cli: no flag " + name)
		}
		_ = v.BindPFlag(key, f)
	}
}

func openSession(v *viper.Viper) (session, error) {
	cfg, err := config.Load(v)
	if errors.Is(err, config.ErrUnknownRandom) {
		return session{}, usageError{err}
	}
	if err != nil {
		return session{}, err
	}
	log, err := logging.New(cfg.LogFile)
	if err != nil {
		return session{}, err
	}
	src, err := generator.NewSource(cfg.Random)
	if err != nil {
		return session{}, usageError{err}
	}
	ui.SetTheme(cfg.DarkMode)
	return session{cfg: cfg, log: log, gen: generator.New(src)}, nil
}

func (a App) runScreen(cmd *cobra.Command, s session) error {
	screen := tui.New(tui.Options{
		Generator: s.gen,
		Clipboard: a.Clipboard,
		Logger:    s.log,
		DarkMode:  s.cfg.DarkMode,
	})

	opts := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout())}
	if s.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := a.RunScreen(screen, opts...)
	if err != nil {
		s.log.Error("screen failed", zap.Error(err))
		return errors.Wrap(err, "screen")
	}

	st := final.State()
	s.log.Info("screen closed", zap.Stringer("phase", st.Phase))
	if s.cfg.Print && st.Phase == model.Generated {
		fmt.Fprintln(cmd.OutOrStdout(), st.Generated)
	}
	return nil
}
