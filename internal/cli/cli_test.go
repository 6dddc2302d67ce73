package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunDispatch verifies exit codes and which stream carries usage text.
func TestRunDispatch(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		code       int
		wantStdout []string
		wantStderr []string
	}{
		{name: "no args", args: nil, code: ExitUsage, wantStdout: []string{"Usage:", "play"}},
		{name: "root help", args: []string{"--help"}, code: ExitOK, wantStdout: []string{"Usage:", "init", "validate", "categories", "play"}},
		{name: "help word", args: []string{"help"}, code: ExitOK, wantStdout: []string{"Commands:"}},
		{name: "unknown", args: []string{"nope"}, code: ExitUsage, wantStderr: []string{"Unknown command: nope", "Usage:"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if code := Run(tc.args, &out, &errOut); code != tc.code {
				t.Fatalf("expected exit %d, got %d", tc.code, code)
			}
			for _, want := range tc.wantStdout {
				if !strings.Contains(out.String(), want) {
					t.Fatalf("expected %q on stdout, got %q", want, out.String())
				}
			}
			for _, want := range tc.wantStderr {
				if !strings.Contains(errOut.String(), want) {
					t.Fatalf("expected %q on stderr, got %q", want, errOut.String())
				}
			}
			if len(tc.wantStderr) == 0 && errOut.Len() != 0 {
				t.Fatalf("unexpected stderr %q", errOut.String())
			}
			if len(tc.wantStdout) == 0 && out.Len() != 0 {
				t.Fatalf("unexpected stdout %q", out.String())
			}
		})
	}
}

// TestSubcommandHelpPrintsUsageLines verifies --help anywhere in the args wins.
func TestSubcommandHelpPrintsUsageLines(t *testing.T) {
	for _, cmd := range commands {
		var out, errOut bytes.Buffer
		if code := Run([]string{cmd.Name, "--config", "x.yml", "-h"}, &out, &errOut); code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out.String(), line) {
				t.Fatalf("%s: missing usage line %q in %q", cmd.Name, line, out.String())
			}
		}
	}
}

// TestSubcommandsRejectPositionalArgs verifies stray arguments are a usage error.
func TestSubcommandsRejectPositionalArgs(t *testing.T) {
	for _, cmd := range commands {
		var out, errOut bytes.Buffer
		if code := Run([]string{cmd.Name, "extra"}, &out, &errOut); code != ExitUsage {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitUsage, code)
		}
		if !strings.Contains(errOut.String(), "unexpected arguments: extra") {
			t.Fatalf("%s: expected argument error, got %q", cmd.Name, errOut.String())
		}
	}
}
