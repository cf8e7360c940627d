// Package parser loads HCL palette definition files. A palette file has an
// optional meta block and a required palette block whose attributes are CSS
// color expressions; nested blocks form groups. Attributes are evaluated in
// source order, so later entries can reference earlier ones through the
// palette variable and derive new colors with the built-in functions.
package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/mattisb/chromat/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
	URL    string `hcl:"url,optional"`
}

// metaConfig captures the meta block for gohcl decoding.
type metaConfig struct {
	Meta   *Meta    `hcl:"meta,block"`
	Remain hcl.Body `hcl:",remain"`
}

// Result is a fully-resolved palette file.
type Result struct {
	Meta    Meta
	Palette *color.Node
}

// Parse reads and resolves a palette file from disk.
func Parse(path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseBytes(src, path)
}

// ParseBytes parses and resolves palette HCL source.
func ParseBytes(src []byte, filename string) (*Result, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	result := &Result{}

	var meta metaConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &meta); diags.HasErrors() {
		return nil, fmt.Errorf("decoding meta: %s", diags.Error())
	}
	if meta.Meta != nil {
		result.Meta = *meta.Meta
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("internal error: parsed body is not *hclsyntax.Body")
	}

	var paletteBody *hclsyntax.Body
	for _, block := range body.Blocks {
		if block.Type == "palette" {
			paletteBody = block.Body
			break
		}
	}
	if paletteBody == nil {
		return nil, fmt.Errorf("missing required palette block")
	}

	root := &color.Node{}
	if err := resolveBody(paletteBody, root, root, "palette"); err != nil {
		return nil, err
	}
	result.Palette = root

	return result, nil
}

// bodyItem is an attribute or block in source order.
type bodyItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// resolveBody evaluates a palette body, attributes and blocks interleaved in
// source order so later entries can reference earlier ones. The eval context
// is rebuilt per item from the current state of the palette root.
func resolveBody(body *hclsyntax.Body, root, node *color.Node, prefix string) error {
	var items []bodyItem
	for _, attr := range body.Attributes {
		items = append(items, bodyItem{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, bodyItem{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].pos.Line != items[j].pos.Line {
			return items[i].pos.Line < items[j].pos.Line
		}
		return items[i].pos.Column < items[j].pos.Column
	})

	for _, item := range items {
		if item.block != nil {
			if node.Children == nil {
				node.Children = make(map[string]*color.Node)
			}
			// A group keeps a non-nil Children map even while empty, so the
			// eval context always sees it as an object; a bare string here
			// would make palette.<group>.color unreachable for siblings.
			child := &color.Node{Children: make(map[string]*color.Node)}
			node.Children[item.block.Type] = child
			if err := resolveBody(item.block.Body, root, child, prefix+"."+item.block.Type); err != nil {
				return err
			}
			continue
		}

		name := prefix + "." + item.attr.Name

		val, diags := item.attr.Expr.Value(buildEvalContext(root))
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %s: %s", name, diags.Error())
		}

		str, err := resolveColorString(val)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		c, err := color.Parse(str)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if item.attr.Name == "color" {
			node.Color = &c
		} else {
			if node.Children == nil {
				node.Children = make(map[string]*color.Node)
			}
			node.Children[item.attr.Name] = &color.Node{Color: &c}
		}
	}

	return nil
}

// resolveColorString extracts a color expression from a cty value: either a
// string, or an object (a palette group reference) with a color attribute.
func resolveColorString(val cty.Value) (string, error) {
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("group has no color attribute; reference a specific child or add a color attribute")
	}
	return "", fmt.Errorf("expected a color string or group, got %s", val.Type().FriendlyName())
}

// nodeToCty converts a palette node to a cty value for the eval context.
// Leaves become their CSS string; groups become objects.
func nodeToCty(node *color.Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(colorString(*node.Color))
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)
	if node.Color != nil {
		vals["color"] = cty.StringVal(colorString(*node.Color))
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		vals[k] = nodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}

// colorString renders a color back to text for the eval context, keeping the
// notation it was written in.
func colorString(c color.Color) string {
	s, _ := color.Format(c, color.TargetAuto)
	return s
}

// buildEvalContext creates the HCL evaluation context with the palette
// variable and the color derivation functions.
func buildEvalContext(root *color.Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": nodeToCty(root),
		},
		Functions: map[string]function.Function{
			"lighten":     makeAdjustFunc("Lightens a color by the given amount (0.0 to 1.0)", color.Lighten),
			"darken":      makeAdjustFunc("Darkens a color by the given amount (0.0 to 1.0)", color.Darken),
			"rotate":      makeAdjustFunc("Rotates a color's hue by the given number of degrees", color.RotateHue),
			"alpha":       makeAdjustFunc("Sets a color's alpha (0.0 to 1.0)", color.WithAlpha),
			"clampchroma": makeClampChromaFunc(),
		},
	}
}

// makeAdjustFunc wraps a (Color, float64) derivation as an HCL function over
// color strings.
func makeAdjustFunc(desc string, adjust func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			amount, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(colorString(adjust(c, amount))), nil
		},
	})
}

// makeClampChromaFunc wraps ClampChroma as an HCL function.
func makeClampChromaFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Clamps a color's chroma to the sRGB gamut boundary",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(colorString(color.ClampChroma(c))), nil
		},
	})
}
