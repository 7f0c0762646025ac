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

// SMSSender posts to a JSON SMS gateway.
type SMSSender struct {
	cfg    config.SMSGatewayConfig
	client *http.Client
}

func NewSMSSender(cfg config.SMSGatewayConfig) *SMSSender {
	return &SMSSender{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type smsRequest struct {
	To     string `json:"to"`
	From   string `json:"from"`
	Text   string `json:"text"`
	APIKey string `json:"api_key"`
}

func (s *SMSSender) Send(ctx context.Context, to string, msg notification.RenderedMessage) error {
	reqBody := smsRequest{
		To:     to,
		From:   s.cfg.Sender,
		Text:   msg.Body,
		APIKey: s.cfg.APIKey,
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

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest:
		// Gateway rejected the recipient or the message shape; retrying the
		// identical payload cannot succeed.
		return Permanent(fmt.Errorf("sms gateway rejected message: %s", resp.Status))
	default:
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}
}
