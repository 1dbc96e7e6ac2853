package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/screencap/internal/capture"
	"github.com/mj1618/screencap/internal/config"
	"github.com/mj1618/screencap/internal/output"
	"github.com/mj1618/screencap/internal/pipeline"
	"github.com/mj1618/screencap/internal/platform"
	"github.com/mj1618/screencap/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screencap [flags] <app-name> [output-file]",
	Short: "Find and capture screenshots of application windows",
	Long: `Find and capture screenshots of application windows.

Windows are discovered by trying casing variants of the query against the
enumerator, then fuzzy matching against visible applications. Noise windows
(zero-size artifacts, transient dialogs, untitled chrome) are filtered out
before selection.

Examples:
  screencap Firefox
  screencap --auto Terminal
  screencap "Visual Studio Code"
  screencap --auto TextEdit ~/screenshot.png
  screencap --list

Note: Multi-word app names should be quoted.`,
	Args:         cobra.MaximumNArgs(2),
	RunE:         runCapture,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.Flags().Bool("auto", false, "Automatically select the first window (no prompt)")
	rootCmd.Flags().Bool("list", false, "List all visible applications and exit")
	rootCmd.Flags().String("filter", "", "With --list, fuzzy-filter application names")
	rootCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0 for the saved image")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, yaml, json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "text":
			output.OutputFormat = output.FormatText
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use text, yaml, or json)", format)
		}
		return nil
	}
}

// captureSummary is the structured result of a successful capture.
type captureSummary struct {
	App        string `yaml:"app" json:"app"`
	Title      string `yaml:"title" json:"title"`
	ID         string `yaml:"id" json:"id"`
	Size       string `yaml:"size" json:"size"`
	OutputFile string `yaml:"output_file" json:"output_file"`
}

func runCapture(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		return runList(cmd)
	}
	if len(args) == 0 {
		return fmt.Errorf("missing app name (multi-word names should be quoted, or use --list)")
	}
	query := args[0]
	outputFile := ""
	if len(args) > 1 {
		outputFile = args[1]
	}
	auto, _ := cmd.Flags().GetBool("auto")
	scale, _ := cmd.Flags().GetFloat64("scale")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	records, err := pipeline.Resolve(provider, query, pipeline.NewSink(os.Stdout))
	if err != nil {
		return err
	}

	selected, ok := selectRecord(records, auto, os.Stdout)
	if !ok {
		selected = chooseWindow(records)
	}

	if selected.Title != "" {
		fmt.Printf("\nWindow title: %s\n", selected.Title)
	}
	fmt.Printf("Capturing screenshot of window %s from %s...\n", selected.ID, selected.App)

	dispatcher := &capture.Dispatcher{
		Capturer: provider.Capturer,
		Dir:      cfg.ScreenshotDir,
		Scale:    scale,
	}
	dest, err := dispatcher.Capture(selected.ID, selected.App, outputFile)
	if err != nil {
		return fmt.Errorf("error capturing screenshot: %w", err)
	}

	if output.OutputFormat == output.FormatText {
		fmt.Printf("Screenshot saved to: %s\n", dest)
		return nil
	}
	return output.Print(captureSummary{
		App:        selected.App,
		Title:      selected.DisplayTitle(),
		ID:         selected.ID,
		Size:       selected.Size(),
		OutputFile: dest,
	})
}
