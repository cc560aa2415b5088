package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"leave-tracker-backend/internal/config"
	apperrors "leave-tracker-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSlackCfg() *config.Config {
	return &config.Config{
		EnvName:        "QA",
		SlackBotKey:    "xoxb-123",
		SlackChannelID: "C123",
		SlackAPIURL:    "https://slack.example.com/api/chat.postMessage",
	}
}

func newSlackWithTransport(cfg *config.Config, rt roundTripFunc) *SlackService {
	s := NewSlackService(cfg)
	s.httpClient = &http.Client{Transport: rt}
	return s
}

func TestSlack_SendNotification_Success(t *testing.T) {
	cfg := baseSlackCfg()
	calls := 0

	s := newSlackWithTransport(cfg, func(req *http.Request) (*http.Response, error) {
		calls++
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "https://slack.example.com/api/chat.postMessage", req.URL.String())
		assert.Equal(t, "Bearer xoxb-123", req.Header.Get("Authorization"))
		assert.Equal(t, "application/json; charset=utf-8", req.Header.Get("Content-Type"))

		raw, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		var msg map[string]string
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "C123", msg["channel"])
		assert.Equal(t, "[QA] hello", msg["text"])

		return jsonResponse(200, `{"ok":true}`), nil
	})

	require.NoError(t, s.SendNotification(context.Background(), "hello"))
	assert.Equal(t, 1, calls)
}

func TestSlack_DefaultsEnvPrefix(t *testing.T) {
	cfg := baseSlackCfg()
	cfg.EnvName = ""

	s := newSlackWithTransport(cfg, func(req *http.Request) (*http.Response, error) {
		var msg map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&msg))
		assert.Equal(t, "[DEV] hi", msg["text"])
		return jsonResponse(200, `{"ok":true}`), nil
	})

	require.NoError(t, s.SendNotification(context.Background(), "hi"))
}

func TestSlack_SendNotification_NotConfigured(t *testing.T) {
	cfg := baseSlackCfg()
	cfg.SlackBotKey = ""

	s := newSlackWithTransport(cfg, func(req *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected request to %s", req.URL)
		return nil, nil
	})

	assert.NoError(t, s.SendNotification(context.Background(), "hello"))
	assert.ErrorIs(t, s.SendTestNotification(context.Background(), "hello"), apperrors.ErrSlackNotConfigured)
}

func TestSlack_Failures(t *testing.T) {
	tests := []struct {
		name     string
		rt       roundTripFunc
		contains string
	}{
		{
			name: "API error",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(200, `{"ok":false,"error":"channel_not_found"}`), nil
			},
			contains: "channel_not_found",
		},
		{
			name: "API error without code",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(200, `{"ok":false}`), nil
			},
			contains: "unknown_error",
		},
		{
			name: "Non-2xx status",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(500, `oops`), nil
			},
			contains: "status=500",
		},
		{
			name: "Transport error",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: refused")
			},
			contains: "refused",
		},
		{
			name: "Invalid JSON",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(200, `not json`), nil
			},
			contains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSlackWithTransport(baseSlackCfg(), tt.rt)

			err := s.SendTestNotification(context.Background(), "hello")
			require.Error(t, err)
			assert.True(t, apperrors.IsUpstream(err))
			assert.Contains(t, err.Error(), tt.contains)

			assert.Error(t, s.SendNotification(context.Background(), "hello"))
		})
	}
}
