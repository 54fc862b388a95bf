package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/mdpane"
	"github.com/iw2rmb/mdpane/internal/config"
	"github.com/iw2rmb/mdpane/internal/log"
)

// settings is resolved once per invocation in the root PersistentPreRunE.
type settings struct {
	cfg config.Config
}

func Root() *cobra.Command {
	var (
		configPath string
		s          settings
	)

	cmd := cobra.Command{
		Use:           "mdpane",
		Short:         "Edit Markdown beside a live preview",
		Version:       mdpane.Build().String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(configPath)
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			s.cfg = config.FromViper(v)
			return log.Set(s.cfg.LogFile, s.cfg.LogLevel)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			log.Flush()
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&configPath, "config", "", "Config file (default ~/.mdpane/config.yaml).")
	pflags.String(config.KeyLanguage, "", "Code block language preselected in the toolbar.")
	pflags.String(config.KeyTheme, "", "Chroma style for code blocks in the preview.")
	pflags.Bool(config.KeyLineNumbers, false, "Show line numbers in the Markdown pane.")
	pflags.Int(config.KeyHistoryLimit, 0, "Undo history depth.")
	pflags.String(config.KeyLogFile, "", "Write logs to this file.")
	pflags.String(config.KeyLogLevel, "", "Log level (debug, info, warn, error).")

	cmd.AddCommand(editCmd(&s))
	cmd.AddCommand(renderCmd(&s))
	cmd.AddCommand(versionCmd())

	return &cmd
}

// bindFlags lets explicitly set flags override the config file and the
// environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, key := range []string{
		config.KeyLanguage,
		config.KeyTheme,
		config.KeyLineNumbers,
		config.KeyHistoryLimit,
		config.KeyLogFile,
		config.KeyLogLevel,
	} {
		f := cmd.Flags().Lookup(key)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %q", key)
		}
	}
	return nil
}
