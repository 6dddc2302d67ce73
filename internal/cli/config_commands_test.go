package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTriviaConfig(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".trivia", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestInitCommandCreatesConfig verifies init writes a config that validates.
func TestInitCommandCreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".trivia", "config.yml")
	original := initInput
	initInput = strings.NewReader("y\n")
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected write confirmation, got %q", out.String())
	}

	out.Reset()
	err.Reset()
	if code := Run([]string{"validate", "--config", path}, &out, &err); code != ExitOK {
		t.Fatalf("expected scaffold to validate, got %d (%s)", code, err.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected Config OK, got %q", out.String())
	}
}

// TestInitCommandRefusesOverwrite verifies init never replaces an existing file.
func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := writeTriviaConfig(t, "version: 1\n")
	var out, err bytes.Buffer
	if code := Run([]string{"init", "--yes", "--config", path}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite error, got %q", err.String())
	}
}

// TestInitCommandCancelled verifies declining the prompt writes nothing.
func TestInitCommandCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	original := initInput
	initInput = strings.NewReader("n\n")
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file, got %v", statErr)
	}
}

// TestValidateCommandReportsIssues verifies validation failures are listed.
func TestValidateCommandReportsIssues(t *testing.T) {
	path := writeTriviaConfig(t, "version: 1\ndefaults:\n  difficulty: impossible\n  question_count: 3\n")
	var out, err bytes.Buffer
	if code := Run([]string{"validate", "--config", path}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, field := range []string{"defaults.difficulty", "defaults.question_count"} {
		if !strings.Contains(err.String(), field) {
			t.Fatalf("expected %s in output, got %q", field, err.String())
		}
	}
}

// TestCategoriesCommandMarksDefaults verifies the catalog listing.
func TestCategoriesCommandMarksDefaults(t *testing.T) {
	path := writeTriviaConfig(t, "version: 1\ndefaults:\n  categories: [Space]\ncategories: [Art, Space]\n")
	var out, err bytes.Buffer
	if code := Run([]string{"categories", "--config", path}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if out.String() != "  Art\n* Space\n" {
		t.Fatalf("unexpected listing %q", out.String())
	}
}
