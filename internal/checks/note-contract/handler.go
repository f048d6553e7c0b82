package notecontract

import (
	"context"
	"fmt"
	"strings"

	"braindump-probe/internal/braindump"
	proberrors "braindump-probe/internal/common/errors"
	"braindump-probe/internal/common/logger"
)

const CheckName = "note-contract"

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

// Execute submits the note input and validates the response against the
// note contract. An intent other than "note" is reported as a hint, not a
// failure; any violated assertion aborts with CONTRACT_VIOLATION.
func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	h.logger.Info("submitting note input", map[string]interface{}{
		"userId": h.config.UserID,
		"text":   h.config.Text,
	})

	resp, err := h.client.SubmitInput(ctx, h.config.UserID, h.config.Text)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Intent:  resp.Intent,
		Status:  resp.Status,
		Message: resp.Message,
		Result:  validateNoteContract(resp),
	}

	if resp.Intent != braindump.IntentNote {
		mismatch := proberrors.NewIntentMismatch(braindump.IntentNote, resp.Intent)
		out.Mismatch = true
		out.Hint = fmt.Sprintf("%s — try a more note-like input", mismatch.Message)
		h.logger.Warn("intent mismatch", map[string]interface{}{
			"want": braindump.IntentNote,
			"got":  resp.Intent,
		})
	}

	if !out.Result.Valid() {
		return out, proberrors.NewContractViolation(CheckName,
			strings.Join(out.Result.FailureMessages(), "; "))
	}

	h.logger.Info("note contract satisfied", map[string]interface{}{
		"status":   resp.Status,
		"mismatch": out.Mismatch,
	})
	return out, nil
}
