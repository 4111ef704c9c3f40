package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nami2111/nft-studio/internal/engine"
)

var compositeCmd = &cobra.Command{
	Use:   "composite",
	Short: "Blend an overlay image onto a base image",
	Args:  cobra.NoArgs,
	RunE:  runComposite,
}

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "Blend an ordered list of layers onto a base image",
	Long: `Blend an ordered list of layers onto a base image.

Layers are applied in the order given, first --layer lowest.`,
	Args: cobra.NoArgs,
	RunE: runLayers,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Resize base and overlay to a target size, then blend",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	compositeCmd.Flags().StringP("base", "b", "", "Base image file")
	compositeCmd.Flags().String("overlay", "", "Overlay image file")
	compositeCmd.Flags().StringP("output", "o", "", "Output PNG file (default: print a data URL)")
	compositeCmd.MarkFlagRequired("base")
	compositeCmd.MarkFlagRequired("overlay")
	rootCmd.AddCommand(compositeCmd)

	layersCmd.Flags().StringP("base", "b", "", "Base image file")
	layersCmd.Flags().StringArrayP("layer", "l", nil, "Layer image file (repeatable, bottom to top)")
	layersCmd.Flags().StringP("output", "o", "", "Output PNG file (default: print a data URL)")
	layersCmd.MarkFlagRequired("base")
	rootCmd.AddCommand(layersCmd)

	previewCmd.Flags().StringP("base", "b", "", "Base image file")
	previewCmd.Flags().String("overlay", "", "Overlay image file")
	previewCmd.Flags().Int("width", 0, "Preview width in pixels")
	previewCmd.Flags().Int("height", 0, "Preview height in pixels")
	previewCmd.Flags().StringP("output", "o", "", "Output PNG file (default: print a data URL)")
	previewCmd.MarkFlagRequired("base")
	previewCmd.MarkFlagRequired("overlay")
	previewCmd.MarkFlagRequired("width")
	previewCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(previewCmd)
}

func runComposite(cmd *cobra.Command, args []string) error {
	basePath, _ := cmd.Flags().GetString("base")
	overlayPath, _ := cmd.Flags().GetString("overlay")
	outputPath, _ := cmd.Flags().GetString("output")

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	base, err := readFile("base", basePath)
	if err != nil {
		return err
	}
	overlay, err := readFile("overlay", overlayPath)
	if err != nil {
		return err
	}

	result, err := eng.CompositeImages(base, overlay)
	if err != nil {
		return err
	}
	return writeResult(cmd, result, outputPath)
}

func runLayers(cmd *cobra.Command, args []string) error {
	basePath, _ := cmd.Flags().GetString("base")
	layerPaths, _ := cmd.Flags().GetStringArray("layer")
	outputPath, _ := cmd.Flags().GetString("output")

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	base, err := readFile("base", basePath)
	if err != nil {
		return err
	}
	layers := make([][]byte, len(layerPaths))
	for i, p := range layerPaths {
		if layers[i], err = readFile(fmt.Sprintf("layer %d", i), p); err != nil {
			return err
		}
	}

	result, err := eng.CompositeLayerBytes(base, layers)
	if err != nil {
		return err
	}
	return writeResult(cmd, result, outputPath)
}

func runPreview(cmd *cobra.Command, args []string) error {
	basePath, _ := cmd.Flags().GetString("base")
	overlayPath, _ := cmd.Flags().GetString("overlay")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	outputPath, _ := cmd.Flags().GetString("output")

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	base, err := readFile("base", basePath)
	if err != nil {
		return err
	}
	overlay, err := readFile("overlay", overlayPath)
	if err != nil {
		return err
	}

	result, err := eng.GeneratePreview(base, overlay, width, height)
	if err != nil {
		return err
	}
	return writeResult(cmd, result, outputPath)
}

func readFile(label, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", label, err)
	}
	return data, nil
}

// writeResult saves the PNG to path, or prints its data URL when path is empty.
func writeResult(cmd *cobra.Command, result *engine.CompositeResult, path string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.DataURL())
		return nil
	}
	if err := os.WriteFile(path, result.PNG, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d x %d, %d bytes)\n", path, result.Width, result.Height, len(result.PNG))
	return nil
}
