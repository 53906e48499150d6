package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-capture/capture"
	capturemocks "github.com/marcelsud/webhook-capture/capture/mocks"
	"github.com/marcelsud/webhook-capture/codegen"
	codegenmocks "github.com/marcelsud/webhook-capture/codegen/mocks"
)

func newTestMux(t *testing.T) (*capturemocks.UseCase, *codegenmocks.UseCase, http.Handler) {
	t.Helper()

	captureService := capturemocks.NewUseCase(t)
	codegenService := codegenmocks.NewUseCase(t)
	h := Handlers(context.Background(), captureService, codegenService, "/capture")

	return captureService, codegenService, h
}

func TestCaptureWebhook(t *testing.T) {
	t.Run("captures an arbitrary request", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("Capture", mock.Anything, capture.MatchRecord(func(rec capture.Record) bool {
			return rec.Method == http.MethodPut &&
				rec.PathName == "/orders/42" &&
				rec.QueryParams["source"] == "stripe"
		})).Return("0198f2c4-1111-7000-8000-000000000001", nil)

		req := httptest.NewRequest(http.MethodPut, "/capture/orders/42?source=stripe", strings.NewReader(`{"ok":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp captureResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0198f2c4-1111-7000-8000-000000000001", resp.ID)
	})

	t.Run("bare prefix captures too", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("Capture", mock.Anything, capture.MatchRecord(func(rec capture.Record) bool {
			return rec.PathName == "/"
		})).Return("0198f2c4-1111-7000-8000-000000000002", nil)

		req := httptest.NewRequest(http.MethodDelete, "/capture", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("storage failure is a server error", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("Capture", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/capture/x", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	})
}

func TestListWebhooks(t *testing.T) {
	body := `{"a": 1}`
	record := capture.Record{
		ID:         "0198f2c4-2222-7000-8000-000000000001",
		Method:     "POST",
		PathName:   "/webhooks/stripe",
		IP:         "10.0.0.9",
		StatusCode: 201,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       &body,
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("returns a page with cursor", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("List", mock.Anything, 5, "").Return(capture.Page{
			Records:    []capture.Record{record},
			NextCursor: record.ID,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/webhooks?limit=5", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Webhooks, 1)
		assert.Equal(t, record.ID, resp.Webhooks[0].ID)
		assert.Equal(t, "/webhooks/stripe", resp.Webhooks[0].PathName)
		require.NotNil(t, resp.NextCursor)
		assert.Equal(t, record.ID, *resp.NextCursor)
	})

	t.Run("last page has a null cursor and an empty list stays a list", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("List", mock.Anything, capture.DefaultLimit, "abc").Return(capture.Page{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/webhooks?cursor=abc", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"webhooks":[]`)
		assert.Contains(t, w.Body.String(), `"nextCursor":null`)
	})

	t.Run("out of range limit is rejected", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("List", mock.Anything, 0, "").Return(capture.Page{}, capture.ErrInvalidLimit)

		req := httptest.NewRequest(http.MethodGet, "/api/webhooks?limit=0", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric limit is rejected before the service", func(t *testing.T) {
		captureService, _, h := newTestMux(t)

		req := httptest.NewRequest(http.MethodGet, "/api/webhooks?limit=lots", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		captureService.AssertNotCalled(t, "List")
	})
}

func TestGetWebhook(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		captureService, _, h := newTestMux(t)
		captureService.On("Get", mock.Anything, "missing").Return(capture.Record{}, capture.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/webhooks/missing", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns the full record", func(t *testing.T) {
		contentType := "application/json"
		contentLength := int64(9)
		body := `{"a": 1}`
		record := capture.Record{
			ID:            "0198f2c4-3333-7000-8000-000000000001",
			Method:        "POST",
			PathName:      "/",
			IP:            "192.168.1.5",
			StatusCode:    201,
			ContentType:   &contentType,
			ContentLength: &contentLength,
			Headers:       map[string]string{"content-type": contentType},
			Body:          &body,
			CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}

		captureService, _, h := newTestMux(t)
		captureService.On("Get", mock.Anything, record.ID).Return(record, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/webhooks/"+record.ID, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp webhookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, record.ID, resp.ID)
		require.NotNil(t, resp.ContentLength)
		assert.Equal(t, int64(9), *resp.ContentLength)
		require.NotNil(t, resp.Body)
		assert.Equal(t, body, *resp.Body)
		// Absent query params disappear from the payload entirely
		assert.NotContains(t, w.Body.String(), "queryParams")
	})
}

func TestGenerateHandler(t *testing.T) {
	t.Run("returns generated code", func(t *testing.T) {
		_, codegenService, h := newTestMux(t)
		codegenService.On("GenerateHandler", mock.Anything, []string{"id-1", "id-2"}).
			Return("import { z } from 'zod';", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/generate-handler",
			strings.NewReader(`{"webhookIds": ["id-1", "id-2"]}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp generateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "import { z } from 'zod';", resp.Code)
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		_, codegenService, h := newTestMux(t)
		codegenService.On("GenerateHandler", mock.Anything, mock.Anything).
			Return("", codegen.ErrNoWebhookIDs)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/generate-handler",
			strings.NewReader(`{"webhookIds": []}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is rejected before the service", func(t *testing.T) {
		_, codegenService, h := newTestMux(t)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/generate-handler",
			strings.NewReader(`{"webhookIds":`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		codegenService.AssertNotCalled(t, "GenerateHandler")
	})

	t.Run("upstream failure is a bad gateway", func(t *testing.T) {
		_, codegenService, h := newTestMux(t)
		codegenService.On("GenerateHandler", mock.Anything, []string{"id-1"}).
			Return("", errors.Join(codegen.ErrUpstream, errors.New("all retries failed")))

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/generate-handler",
			strings.NewReader(`{"webhookIds": ["id-1"]}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
