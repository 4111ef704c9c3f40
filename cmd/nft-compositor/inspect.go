package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nami2111/nft-studio/internal/imaging"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show image dimensions, format and alpha information",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imaging.Inspect(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Color depth: %s\n", info.ColorDepth)
	fmt.Fprintf(out, "Alpha:       %t\n", info.HasAlpha)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f KB)\n", info.SizeBytes, float64(info.SizeBytes)/1024)
	return nil
}
