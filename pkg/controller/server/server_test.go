package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/legacylift/legacylift/pkg/controller/server"
	"github.com/legacylift/legacylift/pkg/domain/mock"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestMetrics(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	gt.V(t, rec.Code).Equal(http.StatusOK)
}

func TestStartScanEndpoint(t *testing.T) {
	t.Run("valid request is accepted and executed in background", func(t *testing.T) {
		executed := make(chan types.ScanJobID, 1)
		job := &model.ScanJob{
			ID:            types.ScanJobID("job-1"),
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
			Status:        types.ScanStatusPending,
		}
		uc := &mock.UseCaseMock{
			StartScanFunc: func(ctx context.Context, input *model.StartScanInput) (*model.StartScanOutput, error) {
				return &model.StartScanOutput{
					Job:   job,
					Files: []*model.FileDescriptor{{Path: "main.py"}},
				}, nil
			},
			ExecuteScanFunc: func(ctx context.Context, jobID types.ScanJobID, files []*model.FileDescriptor) error {
				executed <- jobID
				return nil
			},
		}
		srv := server.New(uc)

		body := gt.R1(json.Marshal(&model.StartScanInput{
			OwnerID:       "owner-1",
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})).NoError(t)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scans", bytes.NewReader(body)))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		var resp model.ScanJob
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.ID).Equal(types.ScanJobID("job-1"))

		select {
		case id := <-executed:
			gt.V(t, id).Equal(types.ScanJobID("job-1"))
		case <-time.After(time.Second):
			t.Fatal("background scan was not executed")
		}
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scans", bytes.NewReader([]byte("{"))))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("validation failure is a bad request", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			StartScanFunc: func(ctx context.Context, input *model.StartScanInput) (*model.StartScanOutput, error) {
				return nil, goerr.Wrap(types.ErrValidationFailed, "repository ref is empty")
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scans", bytes.NewReader([]byte("{}"))))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestGetScanEndpoint(t *testing.T) {
	t.Run("existing job is returned", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetScanJobFunc: func(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
				return &model.ScanJob{ID: id, Status: types.ScanStatusCompleted}, nil
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scans/job-1", nil))

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp model.ScanJob
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Status).Equal(types.ScanStatusCompleted)
	})

	t.Run("unknown job is a 404", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetScanJobFunc: func(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
				return nil, goerr.Wrap(repository.ErrNotFound, "scan job not found")
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scans/nope", nil))

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestGetRunEndpoint(t *testing.T) {
	uc := &mock.UseCaseMock{
		GetRunFunc: func(ctx context.Context, id types.RunID) (*model.IntegrationRun, error) {
			return &model.IntegrationRun{
				ID:            id,
				IntegrationID: types.IntegrationID("itg-1"),
				Status:        types.RunStatusSuccess,
			}, nil
		},
	}
	srv := server.New(uc)

	t.Run("run is returned under its own integration", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/integrations/itg-1/runs/run-1", nil))

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("run is hidden under a different integration", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/integrations/other/runs/run-1", nil))

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(t *testing.T) []byte {
	payload := &model.WebhookPayload{Event: "push"}
	payload.Repository.Branch = "main"
	payload.Commit.ID = "deadbeef"
	return gt.R1(json.Marshal(payload)).NoError(t)
}

func newWebhookMock(secret string) (*mock.UseCaseMock, chan types.RunID) {
	executed := make(chan types.RunID, 1)
	uc := &mock.UseCaseMock{
		GetIntegrationFunc: func(ctx context.Context, id types.IntegrationID) (*model.Integration, error) {
			if id != "itg-1" {
				return nil, goerr.Wrap(repository.ErrNotFound, "integration not found")
			}
			return &model.Integration{
				ID:     id,
				Branch: "main",
				Events: []string{"push"},
				Secret: types.WebhookSecret(secret),
				Active: true,
			}, nil
		},
		AcceptWebhookFunc: func(ctx context.Context, integrationID types.IntegrationID, payload *model.WebhookPayload) (*model.WebhookAccept, error) {
			return &model.WebhookAccept{Success: true, RunID: types.RunID("run-1"), Message: "analysis run accepted"}, nil
		},
		ExecuteRunFunc: func(ctx context.Context, runID types.RunID, payload *model.WebhookPayload) error {
			executed <- runID
			return nil
		},
	}
	return uc, executed
}

func TestWebhookEndpoint(t *testing.T) {
	const secret = "s3cret"

	t.Run("correctly signed webhook is accepted", func(t *testing.T) {
		uc, executed := newWebhookMock(secret)
		srv := server.New(uc)

		body := webhookBody(t)
		req := httptest.NewRequest(http.MethodPost, "/integrations/itg-1/webhook", bytes.NewReader(body))
		req.Header.Set("X-Hub-Signature-256", signBody(secret, body))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case id := <-executed:
			gt.V(t, id).Equal(types.RunID("run-1"))
		case <-time.After(time.Second):
			t.Fatal("background run was not executed")
		}
	})

	t.Run("bare hex signature is normalized and accepted", func(t *testing.T) {
		uc, _ := newWebhookMock(secret)
		srv := server.New(uc)

		body := webhookBody(t)
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)

		req := httptest.NewRequest(http.MethodPost, "/integrations/itg-1/webhook", bytes.NewReader(body))
		req.Header.Set("X-Webhook-Signature", hex.EncodeToString(mac.Sum(nil)))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
	})

	t.Run("wrong signature is unauthorized", func(t *testing.T) {
		uc, _ := newWebhookMock(secret)
		srv := server.New(uc)

		body := webhookBody(t)
		req := httptest.NewRequest(http.MethodPost, "/integrations/itg-1/webhook", bytes.NewReader(body))
		req.Header.Set("X-Hub-Signature-256", signBody("wrong-secret", body))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
		gt.A(t, uc.AcceptWebhookCalls()).Length(0)
	})

	t.Run("unsigned webhook is still processed", func(t *testing.T) {
		uc, _ := newWebhookMock(secret)
		srv := server.New(uc)

		body := webhookBody(t)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/integrations/itg-1/webhook", bytes.NewReader(body)))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
	})

	t.Run("unknown integration is a 404", func(t *testing.T) {
		uc, _ := newWebhookMock(secret)
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/integrations/nope/webhook", bytes.NewReader(webhookBody(t))))

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("malformed payload is a bad request", func(t *testing.T) {
		uc, _ := newWebhookMock(secret)
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/integrations/itg-1/webhook", bytes.NewReader([]byte("not json"))))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("filtered event answers OK without a run", func(t *testing.T) {
		uc, executed := newWebhookMock(secret)
		uc.AcceptWebhookFunc = func(ctx context.Context, integrationID types.IntegrationID, payload *model.WebhookPayload) (*model.WebhookAccept, error) {
			return &model.WebhookAccept{Success: true, Message: "branch \"develop\" not watched"}, nil
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/integrations/itg-1/webhook", bytes.NewReader(webhookBody(t))))

		gt.V(t, rec.Code).Equal(http.StatusOK)

		select {
		case <-executed:
			t.Fatal("filtered webhook must not execute a run")
		case <-time.After(50 * time.Millisecond):
		}
	})
}
