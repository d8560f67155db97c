package cli

import (
	"github.com/codepack/codepack/internal/version"
	"github.com/codepack/codepack/pkg/config"
	"github.com/codepack/codepack/pkg/logging"
	"github.com/codepack/codepack/pkg/packer"
	"github.com/codepack/codepack/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// configLoader loads the configuration and finishes logger setup from it
type configLoader func(cmd *cobra.Command) (*config.Config, error)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		format    string
	)

	initTemplateFormatting()

	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		logging.SetupLoggerWithOptions(logging.Options{
			Verbosity: verbosity,
			Level:     cfg.Logging.Level,
			File:      cfg.Logging.File,
			Console:   cmd.ErrOrStderr(),
		})
		return cfg, nil
	}

	rootCmd := &cobra.Command{
		Use:     "codepack",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupConsoleLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(outFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			result, err := packer.Run(cfg)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(loadConfig))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
