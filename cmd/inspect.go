package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandkit/internal/logo"
	"github.com/ziadkadry99/brandkit/internal/site"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show what the brand documents resolve to",
	Long: `Loads the brand documents and prints the dashboard counters, any load
errors and how each logo entry was resolved (variant, backdrop, preview
and download labels).

With --manifest it describes the last build in the output directory instead,
as recorded in its brandkit.json.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "print the resolved logos (or the manifest) as JSON")
	inspectCmd.Flags().Bool("manifest", false, "describe the last build instead of the documents")
	inspectCmd.Flags().String("output", "", "output directory read by --manifest")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")

	if fromManifest, _ := cmd.Flags().GetBool("manifest"); fromManifest {
		override, _ := cmd.Flags().GetString("output")
		m, err := site.ReadManifest(outputDir(cfg, override))
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		}
		printManifest(out, m)
		if len(m.LoadErrors) > 0 {
			return fmt.Errorf("%d document(s) failed to load in build %s", len(m.LoadErrors), m.BuildID)
		}
		return nil
	}

	state := loadState(cmd.Context(), cfg)
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Logos())
	}

	stats := state.Stats()
	fmt.Fprintf(out, "Data: %s\n", cfg.DataDir)
	fmt.Fprintf(out, "Colors: %d  Templates: %d  Fonts: %d  Files: %d\n\n",
		stats.Colors, stats.Templates, stats.Fonts, stats.Assets)

	if state.HasErrors() {
		fmt.Fprintln(out, "Load errors:")
		for _, e := range state.Errors() {
			fmt.Fprintf(out, "  %s\n", e.Error())
		}
		fmt.Fprintln(out)
	}

	logos := state.Logos()
	if len(logos) == 0 {
		fmt.Fprintln(out, "No logos.")
	} else {
		printLogos(out, logos)
	}

	if state.HasErrors() {
		return fmt.Errorf("%d document(s) failed to load", len(state.Errors()))
	}
	return nil
}

func printManifest(out io.Writer, m *site.Manifest) {
	fmt.Fprintf(out, "Build: %s (%s)\n", m.BuildID, m.GeneratedAt.Format(time.RFC3339))
	if m.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", m.Title)
	}
	fmt.Fprintf(out, "Colors: %d  Templates: %d  Fonts: %d  Files: %d\n",
		m.Stats.Colors, m.Stats.Templates, m.Stats.Fonts, m.Stats.Assets)
	fmt.Fprintf(out, "Copied brand files: %d\n\n", len(m.Files))

	if len(m.Missing) > 0 {
		fmt.Fprintln(out, "Missing brand files:")
		for _, p := range m.Missing {
			fmt.Fprintf(out, "  %s\n", p)
		}
		fmt.Fprintln(out)
	}
	if len(m.LoadErrors) > 0 {
		fmt.Fprintln(out, "Load errors:")
		for _, e := range m.LoadErrors {
			fmt.Fprintf(out, "  %s %s: %s\n", e.Document, e.Path, e.Message)
		}
		fmt.Fprintln(out)
	}

	if len(m.Logos) == 0 {
		fmt.Fprintln(out, "No logos.")
		return
	}
	printLogos(out, m.Logos)
}

func printLogos(out io.Writer, logos []logo.Display) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVARIANT\tBACKDROP\tPREVIEW\tDOWNLOADS")
	for _, l := range logos {
		backdrop := "light"
		if l.Dark {
			backdrop = "dark"
		}
		preview := l.PreviewPath
		if preview == "" {
			preview = "-"
		}
		labels := make([]string, 0, len(l.Downloads))
		for _, d := range l.Downloads {
			labels = append(labels, d.Label)
		}
		downloads := strings.Join(labels, ", ")
		if downloads == "" {
			downloads = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.VariantLabel, backdrop, preview, downloads)
	}
	w.Flush()
}
