package cli

import (
	"go.uber.org/zap"

	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/internal/observability"
	"github.com/stewardhq/steward/pkg/models"
)

// Service instances wired during app initialization in app.go.
var (
	BasePath    string
	Config      *models.Config
	Commitments core.CommitmentTable
	Logger      *zap.Logger
	EventLog    observability.EventLog
)
