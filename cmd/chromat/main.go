package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattisb/chromat"
	"github.com/mattisb/chromat/internal/color"
	"github.com/mattisb/chromat/internal/format"
	"github.com/spf13/cobra"
)

var (
	flagTo        string
	flagLegacy    bool
	flagAlpha     string
	flagCeiling   float64
	flagCheck     bool
	flagFmtTo     string
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "chromat",
	Short:   "Parse, convert, and rewrite CSS colors across hex, rgb, hsl, and oklch",
	Version: version,
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color literal to another notation",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Compute the WCAG contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

var maxchromaCmd = &cobra.Command{
	Use:   "maxchroma <lightness> <hue>",
	Short: "Find the largest oklch chroma that stays inside the sRGB gamut",
	Args:  cobra.ExactArgs(2),
	RunE:  runMaxChroma,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Rewrite color literals in files",
	Long:  "Rewrite every color literal in the given files to the target notation, in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate config files from a palette and templates",
	RunE:  runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagTo, "to", "auto", "target notation: auto, hex, hexa, hexshort, rgb, rgba, hsl, hsla, oklch, oklcha")
	convertCmd.Flags().BoolVar(&flagLegacy, "legacy", false, "use comma-separated legacy syntax for rgb/hsl")
	convertCmd.Flags().StringVar(&flagAlpha, "alpha", "auto", "alpha notation: auto, number, percent")
	maxchromaCmd.Flags().Float64Var(&flagCeiling, "ceiling", 0.4, "upper bound for the chroma search")
	fmtCmd.Flags().StringVar(&flagFmtTo, "to", "hex", "target notation for rewritten literals")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files need rewriting (do not write changes)")
	generateCmd.Flags().StringVar(&flagPalette, "palette", "palette.hcl", "path to palette HCL file")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(maxchromaCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func parseAlphaStyle(name string) (color.AlphaStyle, error) {
	switch name {
	case "auto":
		return color.AlphaAuto, nil
	case "number":
		return color.AlphaNumber, nil
	case "percent":
		return color.AlphaPercent, nil
	}
	return color.AlphaAuto, fmt.Errorf("unknown alpha notation %q", name)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := chromat.ParseColor(args[0])
	if err != nil {
		return err
	}

	target, err := chromat.ParseTarget(flagTo)
	if err != nil {
		return err
	}

	alpha, err := parseAlphaStyle(flagAlpha)
	if err != nil {
		return err
	}

	out, ok := color.FormatWith(c, target, color.Options{Legacy: flagLegacy, Alpha: alpha})
	if !ok {
		return fmt.Errorf("%s cannot be written as %s: channels do not compact", args[0], flagTo)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := chromat.ParseColor(args[0])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := chromat.ParseColor(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	ratio := color.ContrastRatio(fg, bg)
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1\n", ratio)
	fmt.Fprintf(cmd.OutOrStdout(), "AA:  %s\n", passFail(color.MeetsAA(fg, bg)))
	fmt.Fprintf(cmd.OutOrStdout(), "AAA: %s\n", passFail(color.MeetsAAA(fg, bg)))
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func runMaxChroma(cmd *cobra.Command, args []string) error {
	lightness, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("lightness: %w", err)
	}
	hue, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("hue: %w", err)
	}

	chroma := chromat.MaxChroma(lightness, hue, flagCeiling)
	fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", chroma)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	target, err := chromat.ParseTarget(flagFmtTo)
	if err != nil {
		return err
	}

	hasErrors := false
	needsRewrite := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		rewritten, changed := format.Rewrite(content, target, color.Options{})
		if changed == 0 {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsRewrite = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsRewrite) {
		os.Exit(1)
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	palette, err := chromat.Load(flagPalette)
	if err != nil {
		return err
	}

	e := &chromat.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
	}

	if err := e.Run(palette); err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated files in %s\n", flagOut)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
