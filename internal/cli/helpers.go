package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stewardhq/steward/internal/assist"
	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/internal/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// dataDir resolves the data root: the --data flag wins, then the
// configured data.dir (relative to the base path unless absolute).
func dataDir() string {
	if dataFlag != "" {
		return dataFlag
	}
	dir := "data"
	if Config != nil && Config.DataDir != "" {
		dir = Config.DataDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(BasePath, dir)
}

// newSession loads the donor and schedule files from the data root.
func newSession() (*core.Session, error) {
	return core.NewSession(dataDir())
}

// newClient picks the gateway: the stub when --offline or offline_mode is
// set, otherwise the OpenAI client configured from .stewardconfig.
func newClient() (llm.Client, error) {
	offline := offlineFlag
	if Config != nil && Config.OfflineMode {
		offline = true
	}
	if offline {
		return assist.NewStubClient(Commitments), nil
	}

	keyEnv := "OPENAI_API_KEY"
	cfg := llm.DefaultConfig("")
	if Config != nil {
		if Config.LLM.APIKeyEnv != "" {
			keyEnv = Config.LLM.APIKeyEnv
		}
		if Config.LLM.Model != "" {
			cfg.Model = Config.LLM.Model
		}
		if Config.LLM.BaseURL != "" {
			cfg.BaseURL = Config.LLM.BaseURL
		}
	}
	cfg.APIKey = os.Getenv(keyEnv)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key in $%s (use --offline for the deterministic heuristics)", keyEnv)
	}
	return llm.NewOpenAIClient(cfg, Logger), nil
}

// parseDateFlag reads a YYYY-MM-DD flag value, defaulting to today.
func parseDateFlag(value string) (models.Date, error) {
	if value == "" {
		return models.Today(), nil
	}
	return models.ParseDate(value)
}

// printJSON pretty-prints v to standard output.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// record writes an audit event when the event log is wired.
func record(eventType, message string, data map[string]any) {
	if EventLog == nil {
		return
	}
	_ = EventLog.Record(eventType, message, data)
}
