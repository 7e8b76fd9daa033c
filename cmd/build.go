package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandkit/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static brand dashboard",
	Long: `Loads the brand documents, renders the dashboard into the output directory
and copies the brand files next to it. Documents that fail to load are
reported but never abort the build.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("serve", false, "start the preview server after generating")
	buildCmd.Flags().Int("port", 0, "port for the preview server (defaults to server.port)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	buildCmd.Flags().Bool("watch", false, "rebuild on changes when serving")
	buildCmd.Flags().String("section", "", "dashboard section to open, e.g. logos")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	override, _ := cmd.Flags().GetString("output")
	out := outputDir(cfg, override)
	serve, _ := cmd.Flags().GetBool("serve")

	state, sections, err := buildSite(cmd.Context(), cfg, out, serve, progress.NewReporter("Copying brand files"))
	if err != nil {
		return err
	}

	stats := state.Stats()
	fmt.Printf("Dashboard generated: %s (%d sections, %d colors, %d templates, %d fonts, %d files)\n",
		out, sections, stats.Colors, stats.Templates, stats.Fonts, stats.Assets)
	if state.HasErrors() {
		fmt.Printf("Warning: %d document(s) failed to load; run `brandkit inspect` for details.\n", len(state.Errors()))
	}

	if !serve {
		return nil
	}

	opts := previewOptions{
		OutputDir: out,
		Port:      cfg.Server.Port,
		Open:      cfg.Server.Open,
		Watch:     false,
		AllowAll:  cfg.Server.AllowAllOrigins,
	}
	if cmd.Flags().Changed("port") {
		opts.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("open") {
		opts.Open, _ = cmd.Flags().GetBool("open")
	}
	opts.Section, _ = cmd.Flags().GetString("section")
	opts.Watch, _ = cmd.Flags().GetBool("watch")
	return runPreview(cmd.Context(), cfg, state, opts)
}
