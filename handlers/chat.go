package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"owusu1946/portfolio-chat/chat"
	"owusu1946/portfolio-chat/config"
	"owusu1946/portfolio-chat/llm"
	"owusu1946/portfolio-chat/middleware"
	"owusu1946/portfolio-chat/tools"
	"owusu1946/portfolio-chat/types"
)

// Handler serves the chat API. NewModel is called once per request so the
// credential is looked up fresh each time.
type Handler struct {
	Engine     *chat.Engine
	Classifier *tools.Classifier
	NewModel   func() (llm.Model, error)
	// Track receives one record per answered turn. Optional.
	Track  func(types.TurnActivity)
	Logger logrus.FieldLogger
}

func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.RequestID(r.Context())
	log := h.Logger.WithField("request_id", requestID)

	// Parse and validate the request body
	var req types.ChatRequest
	body := http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid JSON body")
		writeError(w, types.ErrorMessage(err), http.StatusInternalServerError)
		return
	}
	if err := req.Validate(); err != nil {
		log.WithError(err).Warn("Invalid chat request")
		writeError(w, types.ErrorMessage(err), http.StatusInternalServerError)
		return
	}
	log.WithField("messages", len(req.Messages)).Debug("Incoming messages")

	model, err := h.NewModel()
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			log.Error("Missing API key")
			writeError(w, "Missing API key", http.StatusInternalServerError)
			return
		}
		log.WithError(err).Error("Failed to create model client")
		writeError(w, types.ErrorMessage(err), http.StatusInternalServerError)
		return
	}

	res, err := h.Engine.Respond(r.Context(), model, req.Messages)
	if err != nil {
		log.WithError(err).Error("Failed to answer chat turn")
		if errors.Is(err, chat.ErrSessionBootstrap) {
			writeError(w, chat.ErrSessionBootstrap.Error(), http.StatusInternalServerError)
			return
		}
		writeError(w, types.ErrorMessage(err), http.StatusInternalServerError)
		return
	}

	if h.Track != nil {
		h.Track(turnActivity(requestID, req.Messages[len(req.Messages)-1], res, time.Since(start)))
	}

	writeJSON(w, http.StatusOK, res.Response)
}

// ToolsHandler lists tool names in rule order.
func (h *Handler) ToolsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.ToolsResponse{Tools: h.Classifier.Names()})
}

func turnActivity(requestID string, current types.Message, res chat.Result, elapsed time.Duration) types.TurnActivity {
	activity := types.TurnActivity{
		RequestID:      requestID,
		ActivityType:   config.ActivityReplyResponse,
		MessageLength:  len(current.Content),
		ReplayedTurns:  res.Replayed,
		ResponseLength: len(res.Response.Content),
		Degraded:       res.Degraded,
		LatencyMs:      elapsed.Milliseconds(),
		CreatedAt:      time.Now(),
	}
	if res.Response.ToolUsed {
		activity.ActivityType = config.ActivityToolResponse
		activity.ToolName = res.Response.ToolName
	}
	return activity
}
