package config

// Config is the parsed .trivia/config.yml.
type Config struct {
	Version    int            `yaml:"version"`
	Provider   ProviderConfig `yaml:"provider"`
	Defaults   DefaultsConfig `yaml:"defaults"`
	Categories []string       `yaml:"categories"`
}

// ProviderConfig selects and tunes the question provider.
type ProviderConfig struct {
	Name           string   `yaml:"name"`
	Model          string   `yaml:"model"`
	BaseURL        string   `yaml:"base_url"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Temperature    *float64 `yaml:"temperature"`
}

// DefaultsConfig pre-seeds the Setup screen.
type DefaultsConfig struct {
	Categories    []string `yaml:"categories"`
	Difficulty    string   `yaml:"difficulty"`
	QuestionCount int      `yaml:"question_count"`
}
