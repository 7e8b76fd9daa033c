package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandkit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize brandkit configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure brandkit for your brand data and writes a .brandkit.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
