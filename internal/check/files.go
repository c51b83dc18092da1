package check

import (
	"path/filepath"
)

// RequiredFiles checks that the files a published extension ships with are
// present, along with every contributed theme and the manifest itself.
var RequiredFiles = Check{
	Name:    "Required Files",
	Icon:    "🔍",
	Start:   "Checking required files...",
	Subject: "Required files check",
	Run:     runRequiredFiles,
}

// BuildFiles is the build's shorter variant of RequiredFiles.
var BuildFiles = Check{
	Name:    "Required Files",
	Icon:    "📁",
	Start:   "Checking required files...",
	Subject: "Required files check",
	Run:     runBuildFiles,
}

func runRequiredFiles(env *Env, r *Recorder) error {
	required := append([]string{}, env.Config.Files.Required...)
	if m, err := env.LoadManifest(); err == nil {
		required = append(required, m.ThemePaths()...)
	} else {
		env.Log.Debugf("no contributed themes: %s", err)
	}
	required = append(required, env.Config.Manifest)

	for _, file := range dedupe(required) {
		if env.Exists(file) {
			r.Pass("Found: %s", file)
		} else {
			r.Fail("Missing required file: %s", file)
		}
	}

	for _, file := range env.Config.Files.Optional {
		if env.Exists(file) {
			r.Pass("Found optional: %s", file)
		} else {
			r.Warn("Optional file missing: %s", file)
		}
	}
	return nil
}

func runBuildFiles(env *Env, r *Recorder) error {
	for _, file := range dedupe(env.Config.Files.Build) {
		if env.Exists(file) {
			r.Pass("Found: %s", file)
		} else {
			r.Fail("Missing required file: %s", file)
		}
	}
	return nil
}

// dedupe drops repeated paths, comparing them cleaned, and keeps the first
// spelling of each.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		key := filepath.Clean(filepath.FromSlash(p))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
