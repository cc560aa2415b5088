package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"leave-tracker-backend/internal/config"
	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/logger"
)

const (
	emailTopic       = "external.action.email"
	busOriginator    = "leave-api-v6"
	noReplyAddress   = "no-reply@topcoder.com"
	emailTemplateVer = "v3"
)

// EmailPayload is the body of an external.action.email event
type EmailPayload struct {
	Data               map[string]interface{} `json:"data"`
	From               string                 `json:"from"`
	ReplyTo            string                 `json:"replyTo"`
	Version            string                 `json:"version"`
	SendgridTemplateID string                 `json:"sendgrid_template_id"`
	Recipients         []string               `json:"recipients"`
}

// NewEmailPayload builds a templated email from the no-reply address
func NewEmailPayload(templateID string, recipients []string, data map[string]interface{}) EmailPayload {
	return EmailPayload{
		Data:               data,
		From:               noReplyAddress,
		ReplyTo:            noReplyAddress,
		Version:            emailTemplateVer,
		SendgridTemplateID: templateID,
		Recipients:         recipients,
	}
}

type busMessage struct {
	Topic      string      `json:"topic"`
	Originator string      `json:"originator"`
	MimeType   string      `json:"mime-type"`
	Timestamp  string      `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// EventBusService publishes events to the bus API
type EventBusService struct {
	cfg        *config.Config
	tokens     TokenProvider
	httpClient *http.Client
	now        func() time.Time
}

// NewEventBusService creates a new event bus service
func NewEventBusService(cfg *config.Config, tokens TokenProvider) *EventBusService {
	return &EventBusService{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

// SendEmail publishes payload on the email topic
func (s *EventBusService) SendEmail(ctx context.Context, payload EmailPayload) error {
	return s.postMessage(ctx, emailTopic, payload)
}

func (s *EventBusService) postMessage(ctx context.Context, topic string, payload interface{}) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(busMessage{
		Topic:      topic,
		Originator: busOriginator,
		MimeType:   "application/json",
		Timestamp:  s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode bus message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BusAPIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Errorf("Event bus request failed")
		return apperrors.NewUpstreamError("event bus", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		logger.WithContext(ctx).Errorf("Event bus status code: %d", resp.StatusCode)
		return apperrors.NewUpstreamError("event bus", fmt.Errorf("status code: %d", resp.StatusCode))
	}
}
