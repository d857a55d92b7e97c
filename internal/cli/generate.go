package cli

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/passgen/internal/form"
	"github.com/idilsaglam/passgen/internal/generator"
	"github.com/idilsaglam/passgen/internal/model"
	"github.com/idilsaglam/passgen/internal/ui"
)

const maxCount = 100

type generateFlags struct {
	length  string
	toggles model.Toggles
	count   int
	copy    bool
	plain   bool
}

func (a App) newGenerateCmd(v *viper.Viper) *cobra.Command {
	var gf generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print passwords without opening the form",
		Example: `  passgen generate -l 8
  passgen generate -l 16 -u -d -s --copy
  passgen generate -l 10 --lower=false --digits -c 3 --plain`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(v)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()
			return a.generate(cmd, s, gf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&gf.length, "length", "l", "", "password length, 4-16")
	f.BoolVar(&gf.toggles.Lower, "lower", true, "include lowercase letters")
	f.BoolVarP(&gf.toggles.Upper, "upper", "u", false, "include uppercase letters")
	f.BoolVarP(&gf.toggles.Digits, "digits", "d", false, "include digits")
	f.BoolVarP(&gf.toggles.Symbols, "symbols", "s", false, "include symbols "+generator.SymbolChars)
	f.IntVarP(&gf.count, "count", "c", 1, fmt.Sprintf("number of passwords, 1-%d", maxCount))
	f.BoolVar(&gf.copy, "copy", false, "copy the passwords to the clipboard")
	f.BoolVar(&gf.plain, "plain", false, "print one password per line, no frame")
	return cmd
}

func (a App) generate(cmd *cobra.Command, s session, gf generateFlags) error {
	if gf.count < 1 || gf.count > maxCount {
		return usageError{errors.Newf("count must be between 1 and %d, got %d", maxCount, gf.count)}
	}

	st := model.NewScreenState()
	st.Toggles = gf.toggles
	st = form.SetLength(st, gf.length)

	passwords := make([]string, 0, gf.count)
	for i := 0; i < gf.count; i++ {
		next, err := form.Submit(st, s.gen)
		if err != nil {
			s.log.Debug("generate rejected", zap.String("reason", form.MessageOf(err)))
			return err
		}
		passwords = append(passwords, next.Generated)
	}

	alphabet := generator.Build(gf.toggles)
	s.log.Info("passwords generated",
		zap.Int("count", len(passwords)),
		zap.Int("alphabet_size", len(alphabet)),
	)

	out := cmd.OutOrStdout()
	if gf.plain {
		for _, pw := range passwords {
			fmt.Fprintln(out, pw)
		}
	} else {
		t := ui.Current()
		lines := []string{t.CardTitle.Render("Result:")}
		for _, pw := range passwords {
			lines = append(lines, t.Password.Render(pw))
		}
		if len(passwords) > 0 {
			lines = append(lines, "", t.Muted.Render(ui.StrengthBar(generator.Entropy(alphabet, len(passwords[0])), ui.StrengthScale, 20)))
		}
		if alphabet == "" {
			lines = append(lines, t.Error.Render("no character classes selected"))
		}
		fmt.Fprintln(out, ui.Panel(lines))
	}

	if gf.copy {
		if err := a.Clipboard.WriteAll(strings.Join(passwords, "\n")); err != nil {
			s.log.Error("copy failed", zap.Error(err))
			return errors.Wrap(err, "copy")
		}
		ui.OK(cmd.ErrOrStderr(), "copied to clipboard")
	}
	return nil
}
