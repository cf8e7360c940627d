package chromat

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/mattisb/chromat/internal/color"
)

// Engine loads and executes Go templates against a resolved palette,
// producing application config files, CSS variable sheets, and the like.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them with
// the given palette, and writes output files named after each template.
func (e *Engine) Run(p *Palette) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    Meta
	Palette *color.Node
	FuncMap template.FuncMap
}

// lookupPath resolves a dot-notation path like "highlight.low" in the
// palette tree.
func lookupPath(root *color.Node, path string) (color.Color, error) {
	return root.Lookup(strings.Split(path, "."))
}

// render formats a color for template output, falling back to the 6-digit
// hex form if the target cannot represent it.
func render(c color.Color, target color.Target) string {
	if s, ok := color.FormatWith(c, target, color.Options{}); ok {
		return s
	}
	s, _ := color.FormatWith(c, color.TargetHex, color.Options{})
	return s
}

func buildTemplateData(p *Palette) templateData {
	return templateData{
		Meta:    p.Meta,
		Palette: p.Colors,
		FuncMap: template.FuncMap{
			"palette": func(path string) (color.Color, error) {
				return lookupPath(p.Colors, path)
			},
			"hex": func(c color.Color) string {
				return render(c, color.TargetHex)
			},
			"hexa": func(c color.Color) string {
				return render(c, color.TargetHexA)
			},
			"rgb": func(c color.Color) string {
				return render(c, color.TargetRGB)
			},
			"hsl": func(c color.Color) string {
				return render(c, color.TargetHSL)
			},
			"oklch": func(c color.Color) string {
				return render(c, color.TargetOKLCH)
			},
			"css": func(c color.Color) string {
				return render(c, color.TargetAuto)
			},
			"contrast": func(a, b color.Color) float64 {
				return color.ContrastRatio(a, b)
			},
			"lighten": func(c color.Color, amount float64) color.Color {
				return color.Lighten(c, amount)
			},
			"darken": func(c color.Color, amount float64) color.Color {
				return color.Darken(c, amount)
			},
		},
	}
}
