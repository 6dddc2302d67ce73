package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewSSEServer serves an OpenAI-style chat completion stream that emits
// each part as one content delta.
func NewSSEServer(t testing.TB, parts ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, part := range parts {
			chunk, err := json.Marshal(map[string]any{
				"choices": []map[string]any{{"delta": map[string]string{"content": part}}},
			})
			if err != nil {
				t.Errorf("marshal chunk: %v", err)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(server.Close)
	return server
}
