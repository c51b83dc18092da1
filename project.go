// Package midnightdark validates, reports on and ports the Midnight Dark
// VS Code color theme.
package midnightdark

import (
	"fmt"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/jsvensson/midnightdark/internal/check"
	"github.com/jsvensson/midnightdark/internal/config"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Project is a theme extension checkout and the configuration its checks
// run with.
type Project struct {
	Root       string
	ConfigPath string // empty when running on defaults
	Config     *config.Config
	Logger     commonlog.Logger
}

// Load opens the project at root. configPath may be empty, in which case
// midnightdark.hcl or midnightdark.toml is looked up in root.
func Load(root, configPath string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	cfg, path, err := config.LoadProject(abs, configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	p := &Project{
		Root:       abs,
		ConfigPath: path,
		Config:     cfg,
		Logger:     commonlog.GetLogger("midnightdark"),
	}
	if path != "" {
		p.Logger.Infof("using config %s", path)
	} else {
		p.Logger.Debugf("no config file in %s, using defaults", abs)
	}
	return p, nil
}

// SetTheme points the checks at another theme file.
func (p *Project) SetTheme(path string) {
	if path == "" {
		return
	}
	old := p.Config.Theme
	p.Config.Theme = filepath.ToSlash(path)
	for i, f := range p.Config.Files.Build {
		if f == old {
			p.Config.Files.Build[i] = p.Config.Theme
		}
	}
}

func (p *Project) env() *check.Env {
	return check.NewEnv(p.Root, p.Config)
}

// Path resolves a project-relative path.
func (p *Project) Path(rel string) string {
	return p.env().Path(rel)
}

// Test runs the full check suite. observe, when set, sees each result as
// soon as its check finishes.
func (p *Project) Test(observe check.Observer) *check.Summary {
	p.Logger.Debugf("testing %s", p.Config.Theme)
	return check.Run(p.env(), check.TestSuite(), observe)
}

// Build removes old artifacts, then runs the packaging checks. cleaned,
// when set, is told what was removed before the first check starts.
func (p *Project) Build(cleaned func(removed []string), observe check.Observer) *check.Summary {
	removed := p.Clean()
	if cleaned != nil {
		cleaned(removed)
	}
	return check.Run(p.env(), check.BuildSuite(), observe)
}

// Stats summarises the theme under test.
func (p *Project) Stats() (*check.Stats, error) {
	return check.GenerateStats(p.env())
}

// Clean removes build artifacts and returns what it removed.
func (p *Project) Clean() []string {
	removed := check.Clean(p.env())
	p.Logger.Debugf("removed %d artifact(s)", len(removed))
	return removed
}

// Theme loads the theme under test.
func (p *Project) Theme() (*vscode.Theme, error) {
	th, err := vscode.LoadTheme(p.env().ThemePath())
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	return th, nil
}

// Manifest loads the extension manifest.
func (p *Project) Manifest() (*vscode.Manifest, error) {
	return p.env().LoadManifest()
}

// ThemeFiles returns the theme files the manifest contributes, falling back
// to the configured theme when the manifest cannot be read.
func (p *Project) ThemeFiles() []string {
	env := p.env()
	m, err := env.LoadManifest()
	if err != nil || len(m.ThemePaths()) == 0 {
		return []string{env.ThemePath()}
	}
	paths := make([]string, 0, len(m.ThemePaths()))
	for _, rel := range m.ThemePaths() {
		paths = append(paths, env.Path(rel))
	}
	return paths
}

// WatchFiles are the files whose changes invalidate a test run.
func (p *Project) WatchFiles() []string {
	env := p.env()
	files := []string{env.ThemePath(), env.Path(p.Config.Manifest)}
	if p.ConfigPath != "" {
		files = append(files, p.ConfigPath)
	}
	return files
}
