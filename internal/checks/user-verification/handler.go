package userverification

import (
	"context"
	"strings"

	"braindump-probe/internal/braindump"
	proberrors "braindump-probe/internal/common/errors"
	"braindump-probe/internal/common/logger"
	"braindump-probe/internal/common/validation"
)

const CheckName = "user-verification"

const verifySchema = `{
	"type": "object",
	"properties": {
		"registered": {"type": "boolean"},
		"registration_url": {"type": "string"}
	},
	"required": ["registered"]
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

// Execute looks the test subject up. An unregistered user is documented
// behavior, not an error: the caller short-circuits the run and reports the
// registration link. An unregistered response without a registration_url is
// a contract violation, since there is nothing to report.
func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	h.logger.Info("verifying user", map[string]interface{}{
		"userId": h.config.UserID,
	})

	resp, err := h.client.VerifyUser(ctx, h.config.UserID)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Registered:      resp.Registered,
		RegistrationURL: resp.RegistrationURL,
		Result:          validation.AgainstSchema("verify-user", resp.Raw, verifySchema),
	}

	if !resp.Registered {
		validation.RequireNonEmptyString(out.Result, resp.Raw, "registration_url")
	}

	if !out.Result.Valid() {
		return out, proberrors.NewContractViolation(CheckName,
			strings.Join(out.Result.FailureMessages(), "; "))
	}

	h.logger.Info("user verification complete", map[string]interface{}{
		"registered": resp.Registered,
	})
	return out, nil
}
