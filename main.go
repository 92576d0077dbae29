package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"sample-organizer/internal/config"
	"sample-organizer/internal/services"
	"sample-organizer/internal/shared"
)

const toolVersion = "1.2.0"

var (
	debug           bool
	dryRun          bool
	parallelism     int
	warningBehavior string
	ffmpegPath      string
)

var rootCmd = &cobra.Command{
	Use:     "sample-organizer",
	Version: toolVersion,
	Short:   "Organize and analyze audio sample libraries.",
	Long: fmt.Sprintf(`Sample Organizer (v%s)

Turns sprawling sample pack folders into a tidy category-first library:
- organize: classify every sample, rebuild its filename from parsed
  BPM/key metadata and move it into a per-category folder.
- analyze: decode an organized library and write a CSV of acoustic
  descriptors (tempo, brightness, loudness, ...) per sample.`, toolVersion),
}

var organizeCmd = &cobra.Command{
	Use:   "organize [source] [destination]",
	Short: "Sort a sample folder into a category-first library.",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		source, dest := cfg.SourceDir, cfg.DestinationDir
		if len(args) > 0 {
			source = args[0]
		}
		if len(args) > 1 {
			dest = args[1]
		}

		container := services.NewServiceContainer(cfg, services.Options{Debug: debug, DryRun: dryRun})

		colorInfo.Printf("🎛️  Organizing %s into %s...\n", source, dest)
		if _, err := container.Organizer.Run(source, dest); err != nil {
			colorError.Printf("❌ Organization failed: %v\n", err)
			os.Exit(1)
		}
		if cfg.WarningBehavior == "summary" {
			container.WarningCollector.PrintSummary()
		}
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [library] [output.csv]",
	Short: "Compute acoustic descriptors for an organized library.",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		library, output := cfg.DestinationDir, cfg.OutputCSV
		if len(args) > 0 {
			library = args[0]
		}
		if len(args) > 1 {
			output = args[1]
		}

		if _, err := exec.LookPath(cfg.FFmpegPath); err != nil {
			colorError.Printf("❌ ffmpeg not found (%q): %v\n", cfg.FFmpegPath, err)
			colorInfo.Println("Install ffmpeg or set FFmpegPath in the config file.")
			os.Exit(1)
		}

		container := services.NewServiceContainer(cfg, services.Options{Debug: debug})

		colorInfo.Printf("🔬 Analyzing %s...\n", library)
		if _, err := container.Analyzer.Run(context.Background(), library, output); err != nil {
			colorError.Printf("❌ Analysis failed: %v\n", err)
			os.Exit(1)
		}
		if cfg.WarningBehavior == "summary" {
			container.WarningCollector.PrintSummary()
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create the configuration file if needed and show it.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := config.DefaultConfigPath()
		cfg, err := config.EnsureConfigExists(path)
		if err != nil {
			colorError.Printf("❌ Failed to prepare config file: %v\n", err)
			os.Exit(1)
		}
		colorSuccess.Println("✅ Configuration file:", path)
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			colorError.Printf("❌ Failed to render config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sample-organizer v%s\n", toolVersion)
	},
}

// loadConfig loads the per-user config file, creating it on first run, and
// applies command-line overrides on top.
func loadConfig() *config.Config {
	path := config.DefaultConfigPath()
	cfg, err := config.EnsureConfigExists(path)
	if err != nil {
		colorWarning.Printf("⚠️  Could not load config from %s: %v (using defaults)\n", path, err)
		cfg = config.GetDefaultConfig()
	}

	if parallelism > 0 {
		cfg.Parallelism = parallelism
	}
	if warningBehavior != "" {
		cfg.WarningBehavior = warningBehavior
	}
	if ffmpegPath != "" {
		cfg.FFmpegPath = ffmpegPath
	}

	if err := cfg.Validate(); err != nil {
		colorError.Printf("❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&parallelism, "parallelism", 0, "Number of files analyzed in parallel")
	rootCmd.PersistentFlags().StringVar(&warningBehavior, "warning-behavior", "", "How to report warnings (immediate, summary, silent)")
	rootCmd.PersistentFlags().StringVar(&ffmpegPath, "ffmpeg-path", "", "Path to the ffmpeg binary")

	organizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print planned moves without touching any file")

	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	shared.InitializeColors()
	if shared.IsDebugMode() {
		debug = true
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
