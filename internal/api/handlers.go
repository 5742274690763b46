package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uaclass/pkg/logger"
	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

const (
	maxBodyBytes = 1 << 20
	maxBatchSize = 1000
)

// classifyRequest accepts a single user agent or a batch. Values are kept raw
// so non-string entries can be rejected with the kind that was sent.
type classifyRequest struct {
	UserAgent  json.RawMessage   `json:"user_agent"`
	UserAgents []json.RawMessage `json:"user_agents"`
}

type batchResponse struct {
	Results []useragent.UserAgent `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	log     *slog.Logger
	metrics *Metrics
}

// classifyQuery handles GET /classify. The "ua" query parameter wins over
// the request's own User-Agent header.
func (h *handlers) classifyQuery(w http.ResponseWriter, r *http.Request) {
	var ua useragent.UserAgent
	if q := r.URL.Query(); q.Has("ua") {
		ua = useragent.New(q.Get("ua"))
	} else if fromCtx, ok := useragent.FromContext(r.Context()); ok {
		ua = fromCtx
	} else {
		ua = useragent.New(r.UserAgent())
	}

	h.observe(r, ua)
	h.writeJSON(w, r, http.StatusOK, ua)
}

// classifyBody handles POST /classify.
func (h *handlers) classifyBody(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, errors.Join(ErrMalformedBody, err))
		return
	}

	switch {
	case len(req.UserAgent) > 0:
		ua, err := parseRaw(req.UserAgent)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		h.observe(r, ua)
		h.writeJSON(w, r, http.StatusOK, ua)

	case req.UserAgents != nil:
		if len(req.UserAgents) > maxBatchSize {
			h.writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d > %d", ErrTooManyAgents, len(req.UserAgents), maxBatchSize))
			return
		}
		results := make([]useragent.UserAgent, 0, len(req.UserAgents))
		for i, raw := range req.UserAgents {
			ua, err := parseRaw(raw)
			if err != nil {
				h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("user_agents[%d]: %w", i, err))
				return
			}
			results = append(results, ua)
		}
		for _, ua := range results {
			h.observe(r, ua)
		}
		h.log.DebugContext(r.Context(), "classified batch", logger.Count(len(results)))
		h.writeJSON(w, r, http.StatusOK, batchResponse{Results: results})

	default:
		h.writeError(w, r, http.StatusBadRequest, ErrMissingUserAgent)
	}
}

// parseRaw decodes one JSON value and classifies it when it is a string.
func parseRaw(raw json.RawMessage) (useragent.UserAgent, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return useragent.UserAgent{}, errors.Join(ErrMalformedBody, err)
	}
	return useragent.Parse(v)
}

func (h *handlers) observe(r *http.Request, ua useragent.UserAgent) {
	h.metrics.Observe(ua)
	h.log.DebugContext(r.Context(), "classified user agent",
		logger.UserAgent(ua.UserAgent()),
		logger.Platform(ua.Platform()),
		logger.Browser(ua.Browser()),
	)
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.log.InfoContext(r.Context(), "rejected classify request", slog.Int("status", status), logger.Error(err))
	h.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
