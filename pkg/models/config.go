package models

// LLMConfig holds the gateway settings read from .stewardconfig.
type LLMConfig struct {
	Model     string
	BaseURL   string
	APIKeyEnv string
}

// Config is the merged global configuration for the assistant.
type Config struct {
	LLM LLMConfig

	// OfflineMode selects the deterministic stub instead of the hosted
	// model.
	OfflineMode bool

	// DataDir is the directory containing donors.json and schedule.json,
	// relative to the base path unless absolute.
	DataDir string

	// FollowUpHorizonDays is the default window for reflection timelines.
	FollowUpHorizonDays int
}
