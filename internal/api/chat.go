package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clique360/backend/internal/dispatch"
	"github.com/clique360/backend/internal/entity"
)

type ChatRequest struct {
	Message string               `json:"message"`
	History []entity.ChatMessage `json:"history"`
}

// Chat relays one assistant turn as server-sent events
// @Summary Assistant chat turn
// @Description Streams model output as SSE data frames carrying text fragments and function calls. Function calls are dispatched server-side and their result messages streamed back. A final {"done":true} frame closes the stream.
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param chat body ChatRequest true "Message and prior turns"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Empty message"
// @Failure 500 {object} ErrorResponse "Provider unavailable"
// @Router /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	out, err := h.chat.Stream(ctx, req.Message, req.History)
	if err != nil {
		// Nothing was streamed yet, so a structured error is still possible.
		if errors.Is(err, entity.ErrValidation) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Dados inválidos")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Falha na comunicação com o modelo de IA.")

		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		SendJSONErr(ctx, w, http.StatusInternalServerError,
			errors.New("response writer does not support flushing"), "Streaming não suportado")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sess := dispatch.NewSession()
	sess.Append(entity.ChatMessage{
		ID:        uuid.Must(uuid.NewV4()).String(),
		Sender:    entity.ChatSenderUser,
		Text:      req.Message,
		Timestamp: time.Now().UTC(),
	})

	for chunk := range out {
		writeEvent(w, flusher, chunk)

		if len(chunk.FunctionCalls) == 0 {
			continue
		}

		results := h.dispatcher.DispatchAll(ctx, sess, chunk.FunctionCalls)
		message := dispatch.Messages(results)

		sess.Append(entity.ChatMessage{
			ID:        uuid.Must(uuid.NewV4()).String(),
			Sender:    entity.ChatSenderBot,
			Text:      message,
			Timestamp: time.Now().UTC(),
		})

		writeEvent(w, flusher, entity.ChatChunk{Text: message})
	}

	if ctx.Err() != nil {
		// The client went away; nobody is reading the sentinel.
		return
	}

	writeEvent(w, flusher, entity.ChatChunk{Done: true})
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, chunk entity.ChatChunk) {
	b, err := json.Marshal(chunk)
	if err != nil {
		slog.Error("marshal chat chunk", "error", err)
		return
	}

	_, err = fmt.Fprintf(w, "data: %s\n\n", b)
	if err != nil {
		return
	}

	flusher.Flush()
}
