package servicehealth

import (
	"context"
	"strings"

	"braindump-probe/internal/braindump"
	proberrors "braindump-probe/internal/common/errors"
	"braindump-probe/internal/common/logger"
	"braindump-probe/internal/common/validation"
)

const CheckName = "service-health"

const healthSchema = `{
	"type": "object",
	"properties": {
		"status": {"type": "string"}
	},
	"required": ["status"]
}`

type Handler struct {
	config *Config
	client *braindump.Client
	logger logger.Logger
}

func NewHandler(cfg *Config, log logger.Logger) *Handler {
	return &Handler{
		config: cfg,
		client: braindump.NewClient(cfg.BaseURL, cfg.Timeout, log),
		logger: log.WithFields(map[string]interface{}{"check": CheckName}),
	}
}

// Execute pings /health. The endpoint is unauthenticated and cheap, so this
// runs first when enabled and gives a clear signal before any contract work.
func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	resp, err := h.client.Health(ctx)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Status: resp.Status,
		Result: validation.AgainstSchema("health", resp.Raw, healthSchema),
	}
	validation.RequireNonEmptyString(out.Result, resp.Raw, "status")

	if !out.Result.Valid() {
		return out, proberrors.NewContractViolation(CheckName,
			strings.Join(out.Result.FailureMessages(), "; "))
	}

	h.logger.Info("service healthy", map[string]interface{}{
		"status": resp.Status,
	})
	return out, nil
}
