package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pelletier/go-toml/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/midnightdark/internal/color"
)

// fileConfig mirrors the on-disk layout. Pointer and nil-slice fields mean
// "not set" and keep the default.
type fileConfig struct {
	Theme    *string  `hcl:"theme,optional" toml:"theme"`
	Manifest *string  `hcl:"manifest,optional" toml:"manifest"`
	Type     *string  `hcl:"type,optional" toml:"type"`
	Clean    []string `hcl:"clean,optional" toml:"clean"`

	Thresholds   *thresholdsBlock   `hcl:"thresholds,block" toml:"thresholds"`
	Files        *filesBlock        `hcl:"files,block" toml:"files"`
	Contrast     *contrastBlock     `hcl:"contrast,block" toml:"contrast"`
	Completeness *completenessBlock `hcl:"completeness,block" toml:"completeness"`

	Palette     *paletteBlock     `hcl:"palette,block" toml:"-"`
	TOMLPalette map[string]string `toml:"palette"`
}

type thresholdsBlock struct {
	MinUIColors   *int     `hcl:"min_ui_colors,optional" toml:"min_ui_colors"`
	MinTokenRules *int     `hcl:"min_token_rules,optional" toml:"min_token_rules"`
	Consistency   *float64 `hcl:"consistency,optional" toml:"consistency"`
	SizeWarnKB    *int     `hcl:"size_warn_kb,optional" toml:"size_warn_kb"`
	SizeOptimalKB *int     `hcl:"size_optimal_kb,optional" toml:"size_optimal_kb"`
	ParseWarnMS   *int     `hcl:"parse_warn_ms,optional" toml:"parse_warn_ms"`
}

type filesBlock struct {
	Required []string `hcl:"required,optional" toml:"required"`
	Optional []string `hcl:"optional,optional" toml:"optional"`
	Build    []string `hcl:"build,optional" toml:"build"`
}

type contrastBlock struct {
	MinRatio *float64    `hcl:"min_ratio,optional" toml:"min_ratio"`
	Editor   *editorPair `hcl:"editor,block" toml:"editor"`
	Pairs    []namedPair `hcl:"pair,block" toml:"pair"`
}

type editorPair struct {
	Background         *string `hcl:"background,optional" toml:"background"`
	Foreground         *string `hcl:"foreground,optional" toml:"foreground"`
	FallbackBackground *string `hcl:"fallback_background,optional" toml:"fallback_background"`
	FallbackForeground *string `hcl:"fallback_foreground,optional" toml:"fallback_foreground"`
}

type namedPair struct {
	Name       string `hcl:"name,label" toml:"name"`
	Background string `hcl:"background" toml:"background"`
	Foreground string `hcl:"foreground" toml:"foreground"`
}

type completenessBlock struct {
	Colors         []string `hcl:"colors,optional" toml:"colors"`
	Scopes         []string `hcl:"scopes,optional" toml:"scopes"`
	LanguageScopes []string `hcl:"language_scopes,optional" toml:"language_scopes"`
}

// paletteBlock is decoded by hand so entries can reference earlier ones.
type paletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// Find returns the first config file present in root, or "" if none is.
func Find(root string) string {
	for _, name := range FileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadProject loads the config for a project root. An explicit path must
// exist; otherwise the root is searched and defaults are used if nothing
// is found.
func LoadProject(root, path string) (*Config, string, error) {
	if path == "" {
		path = Find(root)
		if path == "" {
			return Default(), "", nil
		}
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Load reads a config file, choosing the format by extension, and merges
// it over the defaults.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(src)
	case ".hcl":
		return ParseHCL(src, path)
	default:
		return nil, fmt.Errorf("unsupported config format %q (valid: .hcl, .toml)", filepath.Ext(path))
	}
}

// ParseHCL decodes HCL config source. filename is used in diagnostics.
// The palette is evaluated first so other attributes may reference it.
func ParseHCL(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.New("config body is not an hclsyntax.Body")
	}

	var palette []PaletteColor
	var values map[string]cty.Value
	for _, block := range body.Blocks {
		if block.Type != "palette" {
			continue
		}
		var err error
		palette, err = decodePalette(block.Body)
		if err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
		values = make(map[string]cty.Value, len(palette))
		for _, p := range palette {
			values[p.Name] = cty.StringVal(p.Hex)
		}
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, EvalContext(values), &fc); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	return fc.merge(palette)
}

// decodePalette evaluates palette attributes in source order, so each entry
// may reference the ones above it as palette.<name>.
func decodePalette(body *hclsyntax.Body) ([]PaletteColor, error) {
	if len(body.Blocks) > 0 {
		b := body.Blocks[0]
		return nil, fmt.Errorf("%s: nested blocks are not supported in palette", b.DefRange())
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	defined := make(map[string]cty.Value, len(attrs))
	palette := make([]PaletteColor, 0, len(attrs))
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(EvalContext(defined))
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating palette.%s: %s", attr.Name, diags.Error())
		}
		if val.IsNull() || !val.Type().Equals(cty.String) {
			return nil, fmt.Errorf("palette.%s: expected a color string", attr.Name)
		}
		c, err := color.ParseThemeHex(val.AsString())
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", attr.Name, err)
		}
		defined[attr.Name] = cty.StringVal(c.Hex())
		palette = append(palette, PaletteColor{Name: attr.Name, Hex: c.Hex()})
	}
	return palette, nil
}

// ParseTOML decodes TOML config source. Unknown keys are errors.
func ParseTOML(src []byte) (*Config, error) {
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(src)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	var palette []PaletteColor
	if fc.TOMLPalette != nil {
		names := make([]string, 0, len(fc.TOMLPalette))
		for name := range fc.TOMLPalette {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			c, err := color.ParseThemeHex(fc.TOMLPalette[name])
			if err != nil {
				return nil, fmt.Errorf("palette.%s: %w", name, err)
			}
			palette = append(palette, PaletteColor{Name: name, Hex: c.Hex()})
		}
	}

	return fc.merge(palette)
}

// merge applies the set fields over Default and validates the result.
func (fc *fileConfig) merge(palette []PaletteColor) (*Config, error) {
	cfg := Default()

	setString(&cfg.Theme, fc.Theme)
	setString(&cfg.Manifest, fc.Manifest)
	setString(&cfg.Type, fc.Type)
	setSlice(&cfg.Clean, fc.Clean)
	if palette != nil {
		cfg.Palette = palette
	}

	if t := fc.Thresholds; t != nil {
		setInt(&cfg.Thresholds.MinUIColors, t.MinUIColors)
		setInt(&cfg.Thresholds.MinTokenRules, t.MinTokenRules)
		if t.Consistency != nil {
			cfg.Thresholds.Consistency = *t.Consistency
		}
		if t.SizeWarnKB != nil {
			cfg.Thresholds.SizeWarn = int64(*t.SizeWarnKB) * 1024
		}
		if t.SizeOptimalKB != nil {
			cfg.Thresholds.SizeOptimal = int64(*t.SizeOptimalKB) * 1024
		}
		if t.ParseWarnMS != nil {
			cfg.Thresholds.ParseWarn = time.Duration(*t.ParseWarnMS) * time.Millisecond
		}
	}

	if f := fc.Files; f != nil {
		setSlice(&cfg.Files.Required, f.Required)
		setSlice(&cfg.Files.Optional, f.Optional)
		setSlice(&cfg.Files.Build, f.Build)
	}
	if fc.Theme != nil && (fc.Files == nil || fc.Files.Build == nil) {
		cfg.Files.Build = replaceLast(cfg.Files.Build, DefaultTheme, cfg.Theme)
	}

	if c := fc.Contrast; c != nil {
		if c.MinRatio != nil {
			cfg.Contrast.MinRatio = *c.MinRatio
		}
		if e := c.Editor; e != nil {
			setString(&cfg.Contrast.Editor.Background, e.Background)
			setString(&cfg.Contrast.Editor.Foreground, e.Foreground)
			setString(&cfg.Contrast.Editor.FallbackBackground, e.FallbackBackground)
			setString(&cfg.Contrast.Editor.FallbackForeground, e.FallbackForeground)
		}
		if c.Pairs != nil {
			cfg.Contrast.Pairs = make([]ContrastPair, 0, len(c.Pairs))
			for _, p := range c.Pairs {
				cfg.Contrast.Pairs = append(cfg.Contrast.Pairs, uiPair(p.Name, p.Background, p.Foreground))
			}
		}
	}

	if c := fc.Completeness; c != nil {
		setSlice(&cfg.EssentialColors, c.Colors)
		setSlice(&cfg.CommonScopes, c.Scopes)
		setSlice(&cfg.LanguageScopes, c.LanguageScopes)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the checks cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Theme == "" {
		errs = append(errs, errors.New("theme path is empty"))
	}
	if c.Manifest == "" {
		errs = append(errs, errors.New("manifest path is empty"))
	}
	if c.Contrast.MinRatio < 1 || c.Contrast.MinRatio > 21 {
		errs = append(errs, fmt.Errorf("contrast.min_ratio %v out of range [1, 21]", c.Contrast.MinRatio))
	}
	if c.Thresholds.Consistency < 0 || c.Thresholds.Consistency > 100 {
		errs = append(errs, fmt.Errorf("thresholds.consistency %v out of range [0, 100]", c.Thresholds.Consistency))
	}
	if c.Thresholds.SizeOptimal > c.Thresholds.SizeWarn {
		errs = append(errs, errors.New("thresholds.size_optimal_kb must not exceed size_warn_kb"))
	}
	for _, fb := range []string{c.Contrast.Editor.FallbackBackground, c.Contrast.Editor.FallbackForeground} {
		if fb == "" {
			continue
		}
		if _, err := color.ParseThemeHex(fb); err != nil {
			errs = append(errs, fmt.Errorf("contrast.editor fallback: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setSlice(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}

func replaceLast(list []string, old, repl string) []string {
	out := append([]string(nil), list...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == old {
			out[i] = repl
			break
		}
	}
	return out
}
