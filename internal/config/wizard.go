package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectDataDir looks for a directory that already holds brand documents.
func detectDataDir() string {
	for _, dir := range []string{"data", "dashboard/data", "brand"} {
		matches, _ := filepath.Glob(filepath.Join(dir, "*.json"))
		if len(matches) > 0 {
			return dir
		}
	}
	return "data"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to brandkit! Let's configure your brand dashboard.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Dashboard title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory holding tokens/templates/brand/logos JSON",
		Default: detectDataDir(),
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Logo catalog layout.
	layoutPrompt := promptui.Select{
		Label: "Where are the logos described?",
		Items: []string{
			"logos.json (separate logo catalog)",
			"brand.json (inside the brand kit, older layout)",
		},
	}
	layoutIdx, _, err := layoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("logo layout: %w", err)
	}
	logosFile := defaults.LogosFile
	if layoutIdx == 1 {
		logosFile = ""
	}

	// 4. Static files.
	staticPrompt := promptui.Prompt{
		Label:   "Directory of logo and asset files to publish",
		Default: defaults.StaticDir,
	}
	staticDir, err := staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := defaults
	cfg.Title = title
	cfg.DataDir = dataDir
	cfg.LogosFile = logosFile
	cfg.StaticDir = staticDir
	cfg.OutputDir = outputDir
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s does not exist yet. Add tokens.json, templates.json and brand.json before running brandkit build.\n", dataDir)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
