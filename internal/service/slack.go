package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leave-tracker-backend/internal/config"
	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/logger"
)

type slackMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type slackAPIResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// SlackService posts messages to the configured Slack channel
type SlackService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewSlackService creates a new Slack service
func NewSlackService(cfg *config.Config) *SlackService {
	if !cfg.SlackConfigured() {
		logger.New().Warnf("Slack service configuration is incomplete. SLACK_BOT_KEY or SLACK_CHANNEL_ID is missing.")
	}
	return &SlackService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SendNotification posts message to the channel. It does nothing when Slack
// is not configured.
func (s *SlackService) SendNotification(ctx context.Context, message string) error {
	log := logger.WithContext(ctx)
	if !s.cfg.SlackConfigured() {
		log.Warnf("Slack service is not configured. Skipping notification.")
		return nil
	}

	log.Debugf("Sending Slack notification to channel %s", s.cfg.SlackChannelID)
	if err := s.postMessage(ctx, message); err != nil {
		log.WithError(err).Errorf("Error sending Slack notification")
		return err
	}
	log.Infof("Slack notification sent successfully")
	return nil
}

// SendTestNotification posts message and reports configuration and Slack
// API failures to the caller.
func (s *SlackService) SendTestNotification(ctx context.Context, message string) error {
	if !s.cfg.SlackConfigured() {
		return apperrors.ErrSlackNotConfigured
	}

	if err := s.postMessage(ctx, message); err != nil {
		logger.WithContext(ctx).WithError(err).Errorf("Error sending Slack test notification")
		return err
	}
	logger.WithContext(ctx).Infof("Slack test notification sent successfully")
	return nil
}

func (s *SlackService) postMessage(ctx context.Context, message string) error {
	body, err := json.Marshal(slackMessage{
		Channel: s.cfg.SlackChannelID,
		Text:    s.prefix() + message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SlackAPIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.SlackBotKey)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("slack", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewUpstreamError("slack", fmt.Errorf("status=%d body=%s", resp.StatusCode, string(raw)))
	}

	var out slackAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return apperrors.NewUpstreamError("slack", fmt.Errorf("failed to decode response: %w", err))
	}
	if !out.OK {
		slackErr := out.Error
		if slackErr == "" {
			slackErr = "unknown_error"
		}
		return apperrors.NewUpstreamError("slack", fmt.Errorf("slack API error: %s", slackErr))
	}
	if out.Warning != "" {
		logger.WithContext(ctx).Warnf("Slack API warning: %s", out.Warning)
	}
	return nil
}

func (s *SlackService) prefix() string {
	env := s.cfg.EnvName
	if env == "" {
		env = "DEV"
	}
	return "[" + env + "] "
}
