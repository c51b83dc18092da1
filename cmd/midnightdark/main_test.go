package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	t.Cleanup(func() { testOpts.output = "text" })
	empty := t.TempDir()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOut    string
		wantStderr string
	}{
		{
			name:     "test passes on the repository",
			args:     []string{"--root", "../..", "--no-color", "test"},
			wantCode: 0,
			wantOut:  "Running Midnight Dark Theme Tests",
		},
		{
			name:     "stats on the repository",
			args:     []string{"--root", "../..", "--no-color", "stats"},
			wantCode: 0,
			wantOut:  "Name: Midnight Dark",
		},
		{
			name:     "test fails on an empty project",
			args:     []string{"--root", empty, "--no-color", "test"},
			wantCode: 1,
			wantOut:  "Theme file not found",
		},
		{
			name:     "build fails on an empty project",
			args:     []string{"--root", empty, "--no-color", "build"},
			wantCode: 1,
			wantOut:  "Building Midnight Dark Theme",
		},
		{
			name:       "bad config is reported",
			args:       []string{"--root", empty, "--config", "missing.hcl", "test"},
			wantCode:   1,
			wantStderr: "Error: loading config",
		},
		{
			name:       "unknown output format",
			args:       []string{"--root", "../..", "test", "--output", "xml"},
			wantCode:   1,
			wantStderr: "Error:",
		},
		{
			name:     "version",
			args:     []string{"version"},
			wantCode: 0,
			wantOut:  version,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("run(%q) = %d, want %d\nstdout:\n%s\nstderr:\n%s", tt.args, code, tt.wantCode, stdout.String(), stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout missing %q:\n%s", tt.wantOut, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
			if tt.wantCode == 1 && tt.wantStderr == "" && strings.Contains(stderr.String(), "Error:") {
				t.Errorf("failed checks should not print an error line, got %q", stderr.String())
			}
		})
	}
}
