package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/repository"
	"github.com/legacylift/legacylift/pkg/utils/errutil"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/legacylift/legacylift/pkg/utils/telemetry"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	if errors.Is(err, types.ErrBadSignature) {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}
	if errors.Is(err, types.ErrValidationFailed) || errors.Is(err, types.ErrInvalidPayload) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", telemetry.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/scans", func(r chi.Router) {
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				handleStartScan(uc, w, r)
			})
			r.Get("/{scanID}", func(w http.ResponseWriter, r *http.Request) {
				job, err := uc.GetScanJob(r.Context(), types.ScanJobID(chi.URLParam(r, "scanID")))
				if err != nil {
					respondError(w, err)
					return
				}
				respondJSON(w, http.StatusOK, job)
			})
		})

	})

	r.Route("/integrations/{integrationID}", func(r chi.Router) {
		r.Post("/webhook", func(w http.ResponseWriter, r *http.Request) {
			handleWebhook(uc, w, r)
		})
		r.Get("/runs/{runID}", func(w http.ResponseWriter, r *http.Request) {
			run, err := uc.GetRun(r.Context(), types.RunID(chi.URLParam(r, "runID")))
			if err != nil {
				respondError(w, err)
				return
			}
			// A run is only addressable through its own integration
			if run.IntegrationID != types.IntegrationID(chi.URLParam(r, "integrationID")) {
				respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
				return
			}
			respondJSON(w, http.StatusOK, run)
		})
	})

	return &Server{
		mux: r,
	}
}

func handleStartScan(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	var input model.StartScanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	out, err := uc.StartScan(r.Context(), &input)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to start scan", err)
		respondError(w, err)
		return
	}

	// The request context dies with the response; analysis continues on a
	// detached context.
	bgCtx := DetachContext(r.Context())
	go func() {
		if err := uc.ExecuteScan(bgCtx, out.Job.ID, out.Files); err != nil {
			logging.From(bgCtx).Error("background scan failed",
				slog.String("job_id", out.Job.ID.String()),
				slog.Any("error", err),
			)
		}
	}()

	respondJSON(w, http.StatusAccepted, out.Job)
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
