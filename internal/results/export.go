package results

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteJSON encodes a summary as indented JSON.
func WriteJSON(w io.Writer, summary Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// WriteFile writes a summary to path, creating parent directories.
func WriteFile(path string, summary Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	if err := WriteJSON(file, summary); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
