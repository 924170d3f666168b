package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	emailJSProvider = "emailjs"
	emailJSSendPath = "/api/v1.0/email/send"

	// maxErrorBody bounds how much of a failed response is kept as error text
	maxErrorBody = 1 << 10
)

// EmailJSConfig identifies the EmailJS account, service and template
type EmailJSConfig struct {
	Endpoint   string // e.g. https://api.emailjs.com
	PublicKey  string
	PrivateKey string // optional access token
	ServiceID  string
	TemplateID string
	Timeout    time.Duration
}

// EmailJS sends messages through the EmailJS REST API
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
	logger *zap.Logger
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	AccessToken    string  `json:"accessToken,omitempty"`
	TemplateParams Message `json:"template_params"`
}

// NewEmailJS creates an EmailJS sender. A nil client gets a default one
// honoring cfg.Timeout.
func NewEmailJS(cfg EmailJSConfig, client *http.Client, logger *zap.Logger) *EmailJS {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")

	return &EmailJS{
		cfg:    cfg,
		client: client,
		logger: logger.Named("emailjs"),
	}
}

// Send posts the message as template params. Only HTTP 200 counts as delivered.
func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     e.cfg.TemplateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.PrivateKey,
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint+emailJSSendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("emailjs request failed", zap.Error(err))
		return &DeliveryError{Provider: emailJSProvider, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		fields := []zap.Field{
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", text),
		}
		if readErr != nil {
			fields = append(fields, zap.NamedError("read_error", readErr))
		}
		e.logger.Warn("emailjs rejected message", fields...)
		return &DeliveryError{
			Provider: emailJSProvider,
			Status:   resp.StatusCode,
			Text:     strings.TrimSpace(string(text)),
			Err:      readErr,
		}
	}

	e.logger.Info("emailjs message delivered", zap.Duration("took", time.Since(start)))
	return nil
}
