package check

import (
	"fmt"
	"os"
)

// Stats summarises the theme descriptor.
type Stats struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	UIColors    int    `json:"uiColors" yaml:"uiColors"`
	TokenRules  int    `json:"tokenRules" yaml:"tokenRules"`
	TotalScopes int    `json:"totalScopes" yaml:"totalScopes"`
	FileSize    int64  `json:"fileSize" yaml:"fileSize"`
}

// GenerateStats counts what the theme under test defines.
func GenerateStats(env *Env) (*Stats, error) {
	_, th, err := env.LoadTheme()
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(env.ThemePath())
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return &Stats{
		Name:        th.Name,
		Type:        th.Type,
		UIColors:    th.ColorCount(),
		TokenRules:  len(th.TokenColors),
		TotalScopes: th.TotalScopes(),
		FileSize:    info.Size(),
	}, nil
}
