package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandkit/internal/progress"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the dashboard and serve it with live reload",
	Long: `Builds the dashboard, then serves it on a local port. Unless disabled with
--watch=false, changes to the data or brand-file directories trigger a
rebuild and open pages reload themselves.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("output", "", "override output directory")
	serveCmd.Flags().Int("port", 0, "port for the preview server (defaults to server.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", true, "rebuild on changes (defaults to server.watch)")
	serveCmd.Flags().String("section", "", "dashboard section to open, e.g. logos")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	override, _ := cmd.Flags().GetString("output")
	opts := previewOptions{
		OutputDir: outputDir(cfg, override),
		Port:      cfg.Server.Port,
		Open:      cfg.Server.Open,
		Watch:     cfg.Server.Watch,
		AllowAll:  cfg.Server.AllowAllOrigins,
	}
	if cmd.Flags().Changed("port") {
		opts.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("open") {
		opts.Open, _ = cmd.Flags().GetBool("open")
	}
	opts.Section, _ = cmd.Flags().GetString("section")
	if cmd.Flags().Changed("watch") {
		opts.Watch, _ = cmd.Flags().GetBool("watch")
	}

	state, sections, err := buildSite(cmd.Context(), cfg, opts.OutputDir, true, progress.NewReporter("Copying brand files"))
	if err != nil {
		return err
	}
	fmt.Printf("Dashboard generated: %s (%d sections)\n", opts.OutputDir, sections)

	return runPreview(cmd.Context(), cfg, state, opts)
}
