package check

import (
	"os"
	"path/filepath"
)

// Clean removes build artifacts matching the configured patterns and
// returns what it removed. Patterns that match nothing or cannot be
// removed are skipped.
func Clean(env *Env) []string {
	var removed []string
	for _, pattern := range env.Config.Clean {
		matches, err := filepath.Glob(env.Path(pattern))
		if err != nil {
			env.Log.Warningf("clean pattern %q: %s", pattern, err)
			continue
		}
		for _, match := range matches {
			if err := os.RemoveAll(match); err != nil {
				env.Log.Warningf("removing %s: %s", match, err)
				continue
			}
			rel, err := filepath.Rel(env.Root, match)
			if err != nil {
				rel = match
			}
			removed = append(removed, filepath.ToSlash(rel))
		}
	}
	return removed
}
