// Package commands defines the modconflict command line.
package commands

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/modconflict/internal/version"
	"github.com/arthur-debert/modconflict/pkg/cobrax/topics"
	"github.com/arthur-debert/modconflict/pkg/config"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/output/styles"
	"github.com/arthur-debert/modconflict/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
}

// loadConfig resolves the configuration with flags layered on top and
// applies the configured styles
func (g *globalOptions) loadConfig(flags map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		File:  g.configFile,
		Flags: flags,
		Paths: paths.New(),
	})
	if err != nil {
		return nil, err
	}

	if cfg.Output.Styles != "" {
		if err := styles.LoadStyles(paths.ExpandHome(cfg.Output.Styles)); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadStyles).
				WithDetail("path", cfg.Output.Styles)
		}
	}
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "modconflict",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help, but still fail
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd(g))
	rootCmd.AddCommand(newLayersCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	topicFS, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return rootCmd
	}
	tm, err := topics.InitializeWithOptions(rootCmd, topicFS, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return rootCmd
	}
	rootCmd.AddCommand(newTopicsCmd(tm))

	return rootCmd
}
