package llm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// openRouterStreamChunk is a partial SSE payload.
type openRouterStreamChunk struct {
	Choices []openRouterStreamChoice `json:"choices"`
	Usage   *Usage                   `json:"usage"`
	Error   *openRouterStreamError   `json:"error"`
}

// openRouterStreamChoice contains a delta event from OpenRouter.
type openRouterStreamChoice struct {
	Delta        openRouterStreamDelta `json:"delta"`
	FinishReason string                `json:"finish_reason"`
}

// openRouterStreamDelta contains incremental content.
type openRouterStreamDelta struct {
	Content string `json:"content"`
}

// openRouterStreamError is an error reported mid-stream.
type openRouterStreamError struct {
	Message string `json:"message"`
}

// parseOpenRouterStream reads SSE output and converts it into stream events.
func parseOpenRouterStream(reader io.Reader) ([]StreamEvent, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var content strings.Builder
	var usage *Usage

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}
		var chunk openRouterStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return nil, fmt.Errorf("parse stream chunk: %w", err)
		}
		if chunk.Error != nil {
			return nil, fmt.Errorf("openrouter stream error: %s", chunk.Error.Message)
		}
		for _, choice := range chunk.Choices {
			if choice.Delta.Content != "" {
				content.WriteString(choice.Delta.Content)
			}
		}
		if chunk.Usage != nil {
			usage = chunk.Usage
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	events := make([]StreamEvent, 0, 2)
	if content.Len() > 0 {
		events = append(events, StreamEvent{
			Type:    StreamEventMessage,
			Message: content.String(),
		})
	}
	if usage != nil {
		events = append(events, StreamEvent{Type: StreamEventUsage, Usage: *usage})
	}
	return events, nil
}
