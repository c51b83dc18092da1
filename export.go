package midnightdark

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/tliron/commonlog"

	"github.com/jsvensson/midnightdark/internal/color"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// ANSIColors are the 16 terminal colors, named as templates see them.
var ANSIColors = []string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// ansiKey maps an ANSI color name to its workbench color key, e.g.
// "bright_red" to "terminal.ansiBrightRed".
func ansiKey(name string) string {
	var b strings.Builder
	b.WriteString("terminal.ansi")
	for _, part := range strings.Split(name, "_") {
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

// Meta describes the exported theme.
type Meta struct {
	Name      string
	Type      string
	Version   string
	Publisher string
}

// ThemeData is what export templates execute against.
type ThemeData struct {
	Meta   Meta
	Colors map[string]color.Color
	ANSI   map[string]color.Color
	// Tokens maps each scope selector to the style of the last rule
	// naming it.
	Tokens map[string]color.Style
}

// NewThemeData resolves the colors of a theme. m may be nil. UI colors that
// do not parse are left out.
func NewThemeData(th *vscode.Theme, m *vscode.Manifest) *ThemeData {
	data := &ThemeData{
		Meta:   Meta{Name: th.Name, Type: th.Type},
		Colors: make(map[string]color.Color, len(th.Colors)),
		ANSI:   make(map[string]color.Color, len(ANSIColors)),
		Tokens: make(map[string]color.Style),
	}
	if m != nil {
		data.Meta.Version = m.Version
		data.Meta.Publisher = m.Publisher
	}

	for key := range th.Colors {
		if c, ok := th.Color(key); ok {
			data.Colors[key] = c
		}
	}
	for _, name := range ANSIColors {
		if c, ok := data.Colors[ansiKey(name)]; ok {
			data.ANSI[name] = c
		}
	}
	for _, tc := range th.TokenColors {
		style, err := tc.Style()
		if err != nil {
			continue
		}
		for _, scope := range tc.Scope.Values {
			data.Tokens[scope] = style
		}
	}
	return data
}

// ANSINames lists the terminal color names in palette index order, for
// templates that number them.
func (d *ThemeData) ANSINames() []string {
	return ANSIColors
}

// MissingANSI lists the terminal colors the theme does not define.
func (d *ThemeData) MissingANSI() []string {
	var missing []string
	for _, name := range ANSIColors {
		if _, ok := d.ANSI[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Exporter renders Go templates against a theme, one output file per
// template.
type Exporter struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

var exportLog = commonlog.GetLogger("midnightdark.export")

// Run loads all .tmpl files from the templates directory, executes them
// with the given theme data, and writes output files. It returns the paths
// written.
func (e *Exporter) Run(data *ThemeData) ([]string, error) {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if missing := data.MissingANSI(); len(missing) > 0 {
		exportLog.Warningf("theme does not define ANSI colors: %s", strings.Join(missing, ", "))
	}

	var written []string
	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")
		if !e.shouldRender(baseName) {
			continue
		}

		outPath := filepath.Join(e.OutputDir, baseName)
		if err := renderTemplate(tmplPath, outPath, data); err != nil {
			return written, err
		}
		exportLog.Debugf("wrote %s", outPath)
		written = append(written, outPath)
	}

	return written, nil
}

func (e *Exporter) shouldRender(name string) bool {
	return len(e.Apps) == 0 || slices.Contains(e.Apps, name)
}

func renderTemplate(tmplPath, outPath string, data *ThemeData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(funcMap(data)).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

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

func funcMap(data *ThemeData) template.FuncMap {
	return template.FuncMap{
		"hex": func(c color.Color) string {
			return c.Hex()
		},
		"hexBare": func(c color.Color) string {
			return c.HexBare()
		},
		"rgb": func(c color.Color) string {
			return c.RGB()
		},
		"color": func(key string) (color.Color, error) {
			return data.resolveColor(key)
		},
		"token": func(scope string) (color.Style, error) {
			return data.resolveToken(scope)
		},
	}
}

// resolveColor looks up a workbench color key, or "ansi.<name>" for a
// terminal color.
func (d *ThemeData) resolveColor(key string) (color.Color, error) {
	if name, ok := strings.CutPrefix(key, "ansi."); ok {
		c, ok := d.ANSI[name]
		if !ok {
			return color.Color{}, fmt.Errorf("ansi color not found: %s", name)
		}
		return c, nil
	}
	c, ok := d.Colors[key]
	if !ok {
		return color.Color{}, fmt.Errorf("theme color not found: %s", key)
	}
	return c, nil
}

// resolveToken looks up a scope selector. A dotted scope with no rule of
// its own falls back to its parent, so "comment.line" finds "comment".
func (d *ThemeData) resolveToken(scope string) (color.Style, error) {
	for s := scope; s != ""; {
		if style, ok := d.Tokens[s]; ok {
			return style, nil
		}
		i := strings.LastIndex(s, ".")
		if i < 0 {
			break
		}
		s = s[:i]
	}
	return color.Style{}, fmt.Errorf("token scope not found: %s", scope)
}

// Export renders the configured templates against the project's theme.
func (p *Project) Export(e *Exporter) ([]string, error) {
	th, err := p.Theme()
	if err != nil {
		return nil, err
	}
	m, err := p.Manifest()
	if err != nil {
		p.Logger.Warningf("exporting without manifest metadata: %s", err)
		m = nil
	}
	return e.Run(NewThemeData(th, m))
}
