package config

// Config represents the complete configuration structure
type Config struct {
	TMDb    TMDbConfig    `mapstructure:"tmdb"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDbConfig holds TMDb API connection details
type TMDbConfig struct {
	APIKey    string `mapstructure:"api_key"`
	SessionID string `mapstructure:"session_id"`
	BaseURL   string `mapstructure:"base_url"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	ShowDetails   bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
