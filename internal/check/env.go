package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/jsvensson/midnightdark/internal/config"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Env is what checks run against: a project root and its configuration.
type Env struct {
	Root   string
	Config *config.Config
	Log    commonlog.Logger
}

// NewEnv returns an Env for root. A nil cfg means the defaults.
func NewEnv(root string, cfg *config.Config) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Env{
		Root:   root,
		Config: cfg,
		Log:    commonlog.GetLogger("midnightdark.check"),
	}
}

// Path resolves a project-relative path.
func (e *Env) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// Exists reports whether a project-relative path exists.
func (e *Env) Exists(rel string) bool {
	_, err := os.Stat(e.Path(rel))
	return err == nil
}

// ThemePath is the absolute path of the theme under test.
func (e *Env) ThemePath() string {
	return e.Path(e.Config.Theme)
}

// LoadTheme reads and parses the theme under test. Every check loads it
// afresh.
func (e *Env) LoadTheme() ([]byte, *vscode.Theme, error) {
	path := e.ThemePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading theme file: %w", err)
	}
	e.Log.Debugf("read %s (%d bytes)", path, len(data))
	th, err := vscode.ParseTheme(data)
	if err != nil {
		return data, nil, err
	}
	return data, th, nil
}

// LoadManifest reads and parses the extension manifest.
func (e *Env) LoadManifest() (*vscode.Manifest, error) {
	return vscode.LoadManifest(e.Path(e.Config.Manifest))
}
