package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nami2111/nft-studio/internal/compositor"
	"github.com/nami2111/nft-studio/internal/config"
	"github.com/nami2111/nft-studio/internal/engine"
	"github.com/nami2111/nft-studio/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nft-compositor",
	Short: "Composite NFT layer images with source-over alpha blending",
	Long: `nft-compositor blends transparent layer images onto a base image.

It runs as an MCP server over stdio (serve) or as a one-shot command line
tool. Settings are read from NFT_COMPOSITOR_* environment variables and an
optional .env file; flags take precedence.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("resampler", "", "Preview resampler backend (imaging, bild)")
	rootCmd.PersistentFlags().String("rounding", "", "Blend rounding (truncate, nearest)")
	rootCmd.PersistentFlags().String("png-compression", "", "PNG compression (default, none, fast, best)")
	rootCmd.PersistentFlags().Int("max-pixels", 0, "Largest input or preview size in pixels (default 67108864)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional .env file to load")
}

func main() {
	// Configure logging to stderr (stdout is for results and the MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("resampler") {
		cfg.Resampler, _ = flags.GetString("resampler")
	}
	if flags.Changed("rounding") {
		v, _ := flags.GetString("rounding")
		if cfg.Rounding, err = compositor.ParseRounding(v); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("png-compression") {
		v, _ := flags.GetString("png-compression")
		if cfg.PNGCompression, err = imaging.ParseCompression(v); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("max-pixels") {
		cfg.MaxPixels, _ = flags.GetInt("max-pixels")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newEngine builds an engine from the effective configuration.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	if cfg.Debug() {
		log.Printf("nft-compositor %s (built %s, commit %s): resampler=%s rounding=%s png=%s max-pixels=%d",
			Version, BuildTime, GitCommit, cfg.Resampler, cfg.Rounding, cfg.PNGCompression, cfg.MaxPixels)
	}
	return engine.New(opts), nil
}
