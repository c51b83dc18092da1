package check

import (
	"errors"
	"os"

	"github.com/jsvensson/midnightdark/internal/format"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// JSONSyntax checks that the theme file is strict JSON with the expected
// top-level shape and canonical formatting.
var JSONSyntax = Check{
	Name:    "JSON Syntax",
	Icon:    "📝",
	Start:   "Testing JSON syntax...",
	Subject: "JSON syntax test",
	Run:     runJSONSyntax,
}

func runJSONSyntax(env *Env, r *Recorder) error {
	data, err := os.ReadFile(env.ThemePath())
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("Theme file not found")
		}
		return err
	}

	comments := vscode.DetectComments(data)
	if comments.Line {
		return errors.New("JSON contains invalid comments (// style)")
	}
	if comments.Block {
		return errors.New("JSON contains invalid comments (/* */ style)")
	}

	th, err := vscode.ParseTheme(data)
	if err != nil {
		return err
	}

	if !th.Raw.Present("name") || th.Raw.Kind("name") != vscode.KindString {
		return errors.New("Missing or invalid theme name")
	}
	if th.Raw.Kind("type") != vscode.KindString || th.Type != env.Config.Type {
		return errors.New("Missing or invalid theme type")
	}
	if th.Raw.Kind("colors") != vscode.KindObject {
		return errors.New("Missing or invalid colors object")
	}
	if th.Raw.Kind("tokenColors") != vscode.KindArray {
		return errors.New("Missing or invalid tokenColors array")
	}

	if ok, _ := format.IsCanonicalJSON(string(data)); ok {
		r.Pass("JSON is properly formatted")
	} else {
		r.Warn("JSON formatting could be improved")
	}
	return nil
}
