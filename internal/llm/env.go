package llm

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// ErrMissingAPIKey reports that LLM_API_KEY is unset.
var ErrMissingAPIKey = errors.New("LLM_API_KEY is required")

// EnvSettings holds the LLM_* environment variables.
type EnvSettings struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// SettingsFromEnv reads LLM_PROVIDER, LLM_API_KEY, LLM_BASE_URL and LLM_MODEL.
func SettingsFromEnv() EnvSettings {
	get := func(key string) string { return strings.TrimSpace(os.Getenv(key)) }
	return EnvSettings{
		Provider: get("LLM_PROVIDER"),
		APIKey:   get("LLM_API_KEY"),
		BaseURL:  get("LLM_BASE_URL"),
		Model:    get("LLM_MODEL"),
	}
}

// ProviderFromEnv builds a provider for the named backend. Empty arguments
// fall back to the environment; the API key always comes from it.
func ProviderFromEnv(provider, model, baseURL string, client *http.Client) (Provider, error) {
	env := SettingsFromEnv()
	provider = firstNonEmpty(provider, env.Provider)
	switch provider {
	case "":
		return nil, fmt.Errorf("provider is required")
	case "openrouter":
	default:
		return nil, fmt.Errorf("unsupported provider %q", provider)
	}
	if env.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	var doer HTTPDoer
	if client != nil {
		doer = client
	}
	return NewOpenRouterProvider(firstNonEmpty(model, env.Model), env.APIKey, firstNonEmpty(baseURL, env.BaseURL), doer)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
