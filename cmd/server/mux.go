package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wakahq/momo-sms-importer/pkg/processor"
)

type Handler struct {
	processor MessageProcessor
	apiKey    string
}

func NewHandler(
	processor MessageProcessor,
	apiKey string,
) *Handler {
	return &Handler{
		processor: processor,
		apiKey:    apiKey,
	}
}

func (h *Handler) ProcessWebhook(
	ctx context.Context,
	webhook Webhook,
) (string, error) {
	var messages []processor.Message

	for _, sms := range webhook.Messages {
		messages = append(messages, processor.Message{
			ID:         uuid.NewString(),
			Sender:     sms.Sender,
			Content:    sms.Body,
			ReceivedAt: time.Unix(sms.Timestamp, 0),
		})
	}

	return h.processor.ProcessBatch(ctx, messages)
}

func (h *Handler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if h.apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var webhook Webhook

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = json.Unmarshal(b, &webhook); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	summary, err := h.ProcessWebhook(r.Context(), webhook)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(summary))
}

type SimulateHandler struct {
	processor MessageProcessor
	apiKey    string
	sender    string
}

func NewSimulateHandler(
	processor MessageProcessor,
	apiKey string,
	sender string,
) *SimulateHandler {
	return &SimulateHandler{
		processor: processor,
		apiKey:    apiKey,
		sender:    sender,
	}
}

func (h *SimulateHandler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if h.apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request SimulateRequest

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = json.Unmarshal(b, &request); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	rendered, err := h.processor.Simulate(r.Context(), processor.Message{
		ID:         uuid.NewString(),
		Sender:     h.sender,
		Content:    request.Body,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rendered))
}
