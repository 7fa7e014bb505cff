package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-github/v53/github"
	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/utils/errutil"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// signatureHeaders are checked in order; senders differ on the header name
// but all carry an HMAC-SHA256 hex digest of the raw body.
var signatureHeaders = []string{
	"X-Hub-Signature-256",
	"X-Webhook-Signature",
	"X-Signature-256",
}

func pickSignature(h http.Header) string {
	for _, name := range signatureHeaders {
		if v := h.Get(name); v != "" {
			// bare hex digests are normalized to the scheme-prefixed form
			if !strings.Contains(v, "=") {
				v = "sha256=" + v
			}
			return v
		}
	}
	return ""
}

func handleWebhook(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	integrationID := types.IntegrationID(chi.URLParam(r, "integrationID"))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
		return
	}

	integration, err := uc.GetIntegration(ctx, integrationID)
	if err != nil {
		respondError(w, err)
		return
	}

	// Signature verification must see the raw body, before any decoding.
	// An unsigned request is accepted with a warning so senders without
	// signing support still work; a present-but-wrong signature is rejected.
	if sig := pickSignature(r.Header); sig != "" && integration.Secret != "" {
		if err := github.ValidateSignature(sig, body, []byte(integration.Secret)); err != nil {
			logging.From(ctx).Warn("webhook signature mismatch",
				slog.String("integration_id", integrationID.String()),
			)
			respondError(w, goerr.Wrap(types.ErrBadSignature, "signature verification failed"))
			return
		}
	} else if integration.Secret != "" {
		logging.From(ctx).Warn("unsigned webhook accepted",
			slog.String("integration_id", integrationID.String()),
		)
	}

	var payload model.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		respondError(w, goerr.Wrap(types.ErrInvalidPayload, "failed to decode webhook body"))
		return
	}

	accept, err := uc.AcceptWebhook(ctx, integrationID, &payload)
	if err != nil {
		errutil.HandleError(ctx, "fail to accept webhook", err)
		respondError(w, err)
		return
	}

	if accept.RunID == "" {
		respondJSON(w, http.StatusOK, accept)
		return
	}

	bgCtx := DetachContext(ctx)
	go func() {
		if err := uc.ExecuteRun(bgCtx, accept.RunID, &payload); err != nil {
			logging.From(bgCtx).Error("background run failed",
				slog.String("run_id", string(accept.RunID)),
				slog.Any("error", err),
			)
		}
	}()

	respondJSON(w, http.StatusAccepted, accept)
}
