package llm

import "strings"

// openRouterRequest is the JSON payload sent to OpenRouter.
type openRouterRequest struct {
	Model          string                    `json:"model"`
	Stream         bool                      `json:"stream"`
	Messages       []openRouterMessage       `json:"messages"`
	Temperature    *float64                  `json:"temperature,omitempty"`
	ResponseFormat *openRouterResponseFormat `json:"response_format,omitempty"`
}

// openRouterMessage represents a single OpenRouter chat message.
type openRouterMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openRouterResponseFormat constrains the completion format.
type openRouterResponseFormat struct {
	Type string `json:"type"`
}

// buildOpenRouterMessages converts a prompt into OpenRouter message payloads.
func buildOpenRouterMessages(prompt Prompt) []openRouterMessage {
	messages := make([]openRouterMessage, 0, len(prompt.Messages)+1)
	if strings.TrimSpace(prompt.Instructions) != "" {
		messages = append(messages, openRouterMessage{
			Role:    "system",
			Content: prompt.Instructions,
		})
	}
	for _, msg := range prompt.Messages {
		role := msg.Role
		if role == "developer" {
			role = "system"
		}
		if role == "" || strings.TrimSpace(msg.Content) == "" {
			continue
		}
		messages = append(messages, openRouterMessage{Role: role, Content: msg.Content})
	}
	return messages
}
