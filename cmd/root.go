package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/brandkit/internal/config"
	"github.com/ziadkadry99/brandkit/internal/logging"
)

var (
	cfgFile string
	verbose bool

	// logger is built from the config before every command runs.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Brand guideline dashboard generator",
	Long: `brandkit turns a handful of JSON documents (design tokens, templates,
brand kit and logo catalog) into a static brand-guideline dashboard, and
serves it locally with live reload while you edit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if cfg, err := config.Load(cfgFile); err == nil {
			level = string(cfg.LogLevel)
		}
		l, err := logging.New(level, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".brandkit.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
