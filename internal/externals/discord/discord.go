// Package discord is a thin webhook notifier, the Discord counterpart of
// this project's Telegram bot.
//
// Grounded in shape on internal/externals/telegram/telegram.go's thin
// bot-wrapper idiom (a Notify-style interface, a logger-backed push method)
// but substituting a plain webhook POST for a bot session -- no Discord SDK
// appears anywhere in the retrieval pack, and Discord's webhook API is a
// stateless JSON POST with no long-poll/session concept to wrap.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

const requestTimeout = 5 * time.Second

// Notify is the Discord counterpart of telegram.Notify; it takes no chat ID
// and has no Stop method.
type Notify interface {
	PushNotify(ctx context.Context, message string) error
}

type Webhook struct {
	log        *logger.Logger
	url        string
	httpClient *http.Client
}

func New(log *logger.Logger, webhookURL string) *Webhook {
	return &Webhook{log: log, url: webhookURL, httpClient: &http.Client{Timeout: requestTimeout}}
}

type payload struct {
	Content string `json:"content"`
}

func (w *Webhook) PushNotify(ctx context.Context, message string) error {
	if w.url == "" {
		return nil
	}

	body, err := json.Marshal(payload{Content: message})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.log.Warn("discord webhook push failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("discord webhook: status %d", resp.StatusCode)
		w.log.Warn("discord webhook rejected", zap.Error(err))
		return err
	}

	w.log.Info("discord webhook push success", zap.String("message", message))
	return nil
}
