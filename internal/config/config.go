// Package config holds the settings the theme checks run with: which files
// to read, the thresholds they are judged against and the reference palette.
package config

import "time"

// Default configuration values.
const (
	DefaultTheme    = "themes/midnight-dark-color-theme.json"
	DefaultManifest = "package.json"
	DefaultType     = "dark"

	DefaultMinUIColors    = 50
	DefaultMinTokenRules  = 10
	DefaultMinContrast    = 4.5
	DefaultConsistency    = 80.0
	DefaultSizeWarnKB     = 100
	DefaultSizeOptimalKB  = 50
	DefaultParseWarnMilli = 10
)

// FileNames are the config file names searched for in the project root, in order.
var FileNames = []string{"midnightdark.hcl", "midnightdark.toml"}

// Config is the resolved check configuration.
type Config struct {
	Theme    string // theme descriptor, relative to the project root
	Manifest string // extension manifest, relative to the project root
	Type     string // expected theme type

	Thresholds Thresholds
	Files      Files
	Contrast   Contrast

	EssentialColors []string
	CommonScopes    []string
	LanguageScopes  []string

	Palette []PaletteColor
	Clean   []string
}

// Thresholds bound the warning checks.
type Thresholds struct {
	MinUIColors   int
	MinTokenRules int
	Consistency   float64 // percent of palette colors that must be used
	SizeWarn      int64   // bytes
	SizeOptimal   int64   // bytes
	ParseWarn     time.Duration
}

// Files lists the files the required-files checks look for.
type Files struct {
	Required []string
	Optional []string
	Build    []string
}

// Contrast configures the contrast check.
type Contrast struct {
	MinRatio float64
	Editor   ContrastPair
	Pairs    []ContrastPair
}

// ContrastPair names a background/foreground pair of UI color keys.
// Fallbacks are hex literals used when the key is missing.
type ContrastPair struct {
	Name               string
	Background         string
	Foreground         string
	FallbackBackground string
	FallbackForeground string
}

// PaletteColor is a named reference color the theme is expected to use.
type PaletteColor struct {
	Name string
	Hex  string
}

// Default returns the configuration the theme was originally validated with.
func Default() *Config {
	return &Config{
		Theme:    DefaultTheme,
		Manifest: DefaultManifest,
		Type:     DefaultType,
		Thresholds: Thresholds{
			MinUIColors:   DefaultMinUIColors,
			MinTokenRules: DefaultMinTokenRules,
			Consistency:   DefaultConsistency,
			SizeWarn:      DefaultSizeWarnKB * 1024,
			SizeOptimal:   DefaultSizeOptimalKB * 1024,
			ParseWarn:     DefaultParseWarnMilli * time.Millisecond,
		},
		Files: Files{
			Required: []string{"README.md", "LICENSE", "CHANGELOG.md"},
			Optional: []string{"icon.png", ".gitignore", "DEVELOP.md"},
			Build:    []string{"README.md", "LICENSE", "CHANGELOG.md", DefaultTheme},
		},
		Contrast: Contrast{
			MinRatio: DefaultMinContrast,
			Editor: ContrastPair{
				Name:               "editor",
				Background:         "editor.background",
				Foreground:         "editor.foreground",
				FallbackBackground: "#1a1b26",
				FallbackForeground: "#c0caf5",
			},
			Pairs: []ContrastPair{
				uiPair("activityBar", "activityBar.background", "activityBar.foreground"),
				uiPair("sideBar", "sideBar.background", "sideBar.foreground"),
				uiPair("statusBar", "statusBar.background", "statusBar.foreground"),
				uiPair("tab", "tab.activeBackground", "tab.activeForeground"),
			},
		},
		EssentialColors: []string{
			"editor.background",
			"editor.foreground",
			"editor.selectionBackground",
			"editor.lineHighlightBackground",
			"sideBar.background",
			"sideBar.foreground",
			"activityBar.background",
			"activityBar.foreground",
			"statusBar.background",
			"statusBar.foreground",
			"tab.activeBackground",
			"tab.activeForeground",
			"tab.inactiveBackground",
			"tab.inactiveForeground",
		},
		CommonScopes: []string{
			"comment",
			"keyword",
			"string",
			"constant",
			"entity.name.function",
			"variable",
		},
		LanguageScopes: []string{
			"entity.name.function.decorator.python",
			"variable.language.this.js",
			"support.type.property-name.css",
			"markup.heading",
		},
		Palette: []PaletteColor{
			{Name: "primary", Hex: "#c792ea"},
			{Name: "secondary", Hex: "#89ddff"},
			{Name: "accent", Hex: "#c3e88d"},
			{Name: "strings", Hex: "#f07178"},
			{Name: "comments", Hex: "#5c6370"},
			{Name: "background", Hex: "#1a1b26"},
		},
		Clean: []string{"*.vsix", "node_modules/.cache", ".vscode-test"},
	}
}

func uiPair(name, bg, fg string) ContrastPair {
	return ContrastPair{Name: name, Background: bg, Foreground: fg}
}
