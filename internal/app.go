// Package internal provides the App struct that wires the assistant's
// components together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stewardhq/steward/internal/cli"
	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/internal/observability"
	"github.com/stewardhq/steward/pkg/models"
)

// App holds the service dependencies for the assistant.
type App struct {
	BasePath string

	ConfigMgr   core.ConfigurationManager
	Config      *models.Config
	Commitments core.CommitmentTable
	Logger      *zap.Logger
	EventLog    observability.EventLog
}

// ResolveBasePath returns the root directory for configuration and data:
// $STEWARD_HOME when set, the current directory otherwise.
func ResolveBasePath() string {
	if home := os.Getenv("STEWARD_HOME"); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// NewApp creates and wires the assistant's components.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Tracked deliverables ---
	commitments, err := core.LoadCommitments(filepath.Join(basePath, "deliverables.yaml"))
	if err != nil {
		return nil, err
	}
	app.Commitments = commitments

	// --- Logging ---
	// Diagnostics stay off stdout so command output remains clean JSON;
	// STEWARD_DEBUG enables the development logger on stderr.
	logger := zap.NewNop()
	if os.Getenv("STEWARD_DEBUG") != "" {
		if dev, devErr := zap.NewDevelopment(); devErr == nil {
			logger = dev
		}
	}
	app.Logger = logger

	// --- Observability ---
	eventLog, err := observability.NewJSONLEventLog(filepath.Join(basePath, ".steward_events.jsonl"))
	if err != nil {
		// Non-fatal: run without the audit trail.
		eventLog = nil
	}
	app.EventLog = eventLog

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Config = app.Config
	cli.Commitments = app.Commitments
	cli.Logger = app.Logger
	cli.EventLog = app.EventLog

	return app, nil
}
