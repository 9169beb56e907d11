package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// WhatsAppNotifier sends text messages through the WhatsApp Cloud API. With an
// empty token it runs disabled and only logs what it would have sent, so local
// environments work without credentials.
type WhatsAppNotifier struct {
	client        *http.Client
	apiURL        string
	token         string
	phoneNumberID string
	adminPhone    string
	strategy      retry.Strategy
	logger        logger.Logger
}

type Config struct {
	APIURL        string
	Token         string
	PhoneNumberID string
	AdminPhone    string
}

func NewWhatsAppNotifier(cfg Config, log logger.Logger) *WhatsAppNotifier {
	if cfg.Token == "" {
		log.Warn("whatsapp token is empty, notifications disabled")
	}

	return &WhatsAppNotifier{
		client:        &http.Client{Timeout: 10 * time.Second},
		apiURL:        cfg.APIURL,
		token:         cfg.Token,
		phoneNumberID: cfg.PhoneNumberID,
		adminPhone:    cfg.AdminPhone,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    time.Second,
			Backoff:  2,
		},
		logger: log,
	}
}

func (n *WhatsAppNotifier) NotifyRegistration(ctx context.Context, r *domain.Registration, e *domain.Event) error {
	text := fmt.Sprintf(
		"Registration received!\n\nEvent: %s\nDate: %s\nAmount due: %.2f\n\nWe will confirm your spot shortly.",
		e.Title, e.Date.Format("02 Jan 2006 15:04"), r.PaymentAmount,
	)
	if err := n.send(ctx, r.Details.Phone, text); err != nil {
		return err
	}

	if n.adminPhone != "" {
		adminText := fmt.Sprintf(
			"New registration: %s (%s) for %s on %s",
			r.Details.Name, r.Details.Phone, e.Title, e.Date.Format("02 Jan 2006"),
		)
		if err := n.send(ctx, n.adminPhone, adminText); err != nil {
			n.logger.Error("failed to notify admin about registration",
				logger.String("registration_id", r.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (n *WhatsAppNotifier) NotifyContact(ctx context.Context, c *domain.Contact) error {
	if n.adminPhone == "" {
		n.logger.Debug("contact notification skipped (no admin phone)",
			logger.String("contact_id", c.ID),
		)
		return nil
	}

	text := fmt.Sprintf(
		"New contact message\n\nFrom: %s <%s>\nSubject: %s\n\n%s",
		c.Name, c.Email, c.Subject, c.Message,
	)

	return n.send(ctx, n.adminPhone, text)
}

type textMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             messageBody `json:"text"`
}

type messageBody struct {
	Body string `json:"body"`
}

func (n *WhatsAppNotifier) send(ctx context.Context, to, text string) error {
	if n.token == "" {
		n.logger.Debug("notification skipped (whatsapp disabled)", logger.String("text", text))
		return nil
	}
	if to == "" {
		n.logger.Debug("notification skipped (no recipient phone)")
		return nil
	}

	payload, err := json.Marshal(textMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             messageBody{Body: text},
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", n.apiURL, n.phoneNumberID)

	return retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+n.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return fmt.Errorf("send message: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, body)
		}

		return nil
	}, n.strategy)
}
