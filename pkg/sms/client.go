package sms

import (
	"context"
	"errors"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/yosapark/yomogi_backend/config"
)

var ErrMissingRecipient = errors.New("sms: phone number is required")

// Client sends templated booking messages via sms.ir.
type Client struct {
	client                *smsir.Client
	enabled               bool
	reservationTemplateID string
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	return &Client{
		client:                smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey),
		enabled:               true,
		reservationTemplateID: cfg.SMSIR.ReservationTemplateID,
	}, nil
}

// ReservationParams fill the booking confirmation template.
type ReservationParams struct {
	Name  string
	Date  string
	Time  string
	Blend string
}

// SendReservationConfirmation texts a booking summary. The template takes
// the parameters name, date, time and blend. No-op when SMS is disabled or
// no template is configured.
func (c *Client) SendReservationConfirmation(ctx context.Context, phone string, p ReservationParams) error {
	if !c.enabled || c.reservationTemplateID == "" {
		return nil
	}
	return c.SendTemplate(ctx, phone, c.reservationTemplateID, map[string]string{
		"name":  p.Name,
		"date":  p.Date,
		"time":  p.Time,
		"blend": p.Blend,
	})
}

// SendTemplate sends an ultra-fast template message with the given parameters.
func (c *Client) SendTemplate(ctx context.Context, phone, templateID string, params map[string]string) error {
	if !c.enabled {
		return nil
	}
	if phone == "" {
		return ErrMissingRecipient
	}
	if templateID == "" {
		return fmt.Errorf("sms: template ID is required")
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phone,
		TemplateID: templateID,
		Parameters: templateParams(params),
	}

	if _, err := c.client.Verification.UltraFastSend(ctx, req); err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}
	return nil
}

func (c *Client) IsEnabled() bool {
	return c.enabled
}

// templateParams drops empty values; sms.ir rejects blank parameters.
func templateParams(params map[string]string) []smsir.UltraFastParameter {
	out := make([]smsir.UltraFastParameter, 0, len(params))
	for _, k := range []string{"name", "date", "time", "blend"} {
		if v, ok := params[k]; ok && v != "" {
			out = append(out, smsir.UltraFastParameter{Key: k, Value: v})
		}
	}
	for k, v := range params {
		switch k {
		case "name", "date", "time", "blend":
			continue
		}
		if v != "" {
			out = append(out, smsir.UltraFastParameter{Key: k, Value: v})
		}
	}
	return out
}
