package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	chiv5 "github.com/go-chi/chi/v5"

	"github.com/marcelsud/webhook-capture/capture"
	"github.com/marcelsud/webhook-capture/codegen"
)

/* HTTP layer DTOs for the capture API
 * Separate from domain entities to avoid leaking internal structure
 */

// captureResponse acknowledges a captured request
type captureResponse struct {
	ID string `json:"id"`
}

// webhookResponse represents one captured webhook in the API
type webhookResponse struct {
	ID            string            `json:"id"`
	Method        string            `json:"method"`
	PathName      string            `json:"pathName"`
	IP            string            `json:"ip"`
	StatusCode    int               `json:"statusCode"`
	ContentType   *string           `json:"contentType"`
	ContentLength *int64            `json:"contentLength"`
	QueryParams   map[string]string `json:"queryParams,omitempty"`
	Headers       map[string]string `json:"headers"`
	Body          *string           `json:"body"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// listResponse is one page of captured webhooks. NextCursor is null on
// the last page.
type listResponse struct {
	Webhooks   []webhookResponse `json:"webhooks"`
	NextCursor *string           `json:"nextCursor"`
}

// generateRequest selects the webhooks whose bodies feed the generator
type generateRequest struct {
	WebhookIDs []string `json:"webhookIds"`
}

type generateResponse struct {
	Code string `json:"code"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toWebhookResponse(rec capture.Record) webhookResponse {
	return webhookResponse{
		ID:            rec.ID,
		Method:        rec.Method,
		PathName:      rec.PathName,
		IP:            rec.IP,
		StatusCode:    rec.StatusCode,
		ContentType:   rec.ContentType,
		ContentLength: rec.ContentLength,
		QueryParams:   rec.QueryParams,
		Headers:       rec.Headers,
		Body:          rec.Body,
		CreatedAt:     rec.CreatedAt,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// captureWebhook handles every method under the capture prefix.
// Nothing about the request shape is rejected; failures here mean the
// store itself failed.
func captureWebhook(captureService capture.UseCase, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := capture.FromRequest(r, prefix)
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		id, err := captureService.Capture(r.Context(), rec)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to store webhook")
			return
		}

		respondJSON(w, http.StatusCreated, captureResponse{ID: id})
	}
}

// listWebhooks handles GET /api/webhooks
func listWebhooks(captureService capture.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := capture.DefaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "limit must be a number")
				return
			}
			limit = parsed
		}

		page, err := captureService.List(r.Context(), limit, r.URL.Query().Get("cursor"))
		if err != nil {
			if errors.Is(err, capture.ErrInvalidLimit) {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, "failed to list webhooks")
			return
		}

		// Empty pages still serialize as [], not null
		webhooks := make([]webhookResponse, 0, len(page.Records))
		for _, rec := range page.Records {
			webhooks = append(webhooks, toWebhookResponse(rec))
		}

		result := listResponse{Webhooks: webhooks}
		if page.NextCursor != "" {
			result.NextCursor = &page.NextCursor
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// getWebhook handles GET /api/webhooks/{id}
func getWebhook(captureService capture.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chiv5.URLParam(r, "id")

		rec, err := captureService.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, capture.ErrNotFound) {
				respondError(w, http.StatusNotFound, "webhook not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "failed to load webhook")
			return
		}

		respondJSON(w, http.StatusOK, toWebhookResponse(rec))
	}
}

// generateHandler handles POST /api/webhooks/generate-handler
func generateHandler(codegenService codegen.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		code, err := codegenService.GenerateHandler(r.Context(), req.WebhookIDs)
		if err != nil {
			switch {
			case errors.Is(err, codegen.ErrNoWebhookIDs):
				respondError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, codegen.ErrUpstream):
				respondError(w, http.StatusBadGateway, "handler generation failed")
			default:
				respondError(w, http.StatusInternalServerError, "failed to load webhooks")
			}
			return
		}

		respondJSON(w, http.StatusCreated, generateResponse{Code: code})
	}
}
