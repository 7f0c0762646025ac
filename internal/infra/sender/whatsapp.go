package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"letterdesk/internal/domain/notification"
	"letterdesk/internal/pkg/config"
)

// WhatsAppSender posts to a WhatsApp Business gateway.
type WhatsAppSender struct {
	cfg    config.WhatsAppGatewayConfig
	client *http.Client
}

func NewWhatsAppSender(cfg config.WhatsAppGatewayConfig) *WhatsAppSender {
	return &WhatsAppSender{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type whatsAppRequest struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

func (s *WhatsAppSender) Send(ctx context.Context, to string, msg notification.RenderedMessage) error {
	reqBody := whatsAppRequest{
		To:   to,
		From: s.cfg.Sender,
		Text: msg.Body,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		return Permanent(fmt.Errorf("whatsapp gateway rejected recipient: %s", resp.Status))
	default:
		return fmt.Errorf("whatsapp gateway error: %s", resp.Status)
	}
}
