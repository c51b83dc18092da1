package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jsvensson/midnightdark/internal/color"
)

// makeShiftFunc creates an HCL function that adjusts a color's lightness.
// Usage: brighten("#hex", 0.1) or darken(palette.primary, 0.1)
func makeShiftFunc(description string, shift func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: "percentage",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseThemeHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(shift(c, pct).Hex()), nil
		},
	})
}

// EvalContext builds the context config expressions are evaluated in.
// palette holds the palette colors defined so far.
func EvalContext(palette map[string]cty.Value) *hcl.EvalContext {
	ctx := &hcl.EvalContext{
		Functions: map[string]function.Function{
			"brighten": makeShiftFunc("Brightens a color by the given percentage (0.0 to 1.0)", color.Brighten),
			"darken":   makeShiftFunc("Darkens a color by the given percentage (0.0 to 1.0)", color.Darken),
		},
	}
	if palette != nil {
		ctx.Variables = map[string]cty.Value{
			"palette": cty.ObjectVal(palette),
		}
	}
	return ctx
}
