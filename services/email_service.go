package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"SinOutGo/config"
)

const brevoAPIURL = "https://api.brevo.com/v3/smtp/email"

// EmailSender delivers the two transactional mails of the reset flow.
// Delivery is best-effort: implementations log failures instead of
// returning them, and the operations that trigger mail never fail on
// a send error.
type EmailSender interface {
	SendPasswordResetCode(toEmail, code string)
	SendPasswordChangedNotice(toEmail string)
}

type brevoPayload struct {
	Sender      brevoSender      `json:"sender"`
	To          []brevoRecipient `json:"to"`
	Subject     string           `json:"subject"`
	HTMLContent string           `json:"htmlContent"`
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRecipient struct {
	Email string `json:"email"`
}

// BrevoEmailService sends mail through the Brevo transactional HTTP
// API.
type BrevoEmailService struct {
	apiKey   string
	from     string
	fromName string
	client   *http.Client
}

func NewBrevoEmailService(conf config.Config) *BrevoEmailService {
	return &BrevoEmailService{
		apiKey:   conf.BrevoAPIKey,
		from:     conf.EmailFrom,
		fromName: conf.EmailFromName,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *BrevoEmailService) SendPasswordResetCode(toEmail, code string) {
	body := fmt.Sprintf(
		"<p>Your password reset code is <strong>%s</strong>.</p><p>It expires in 1 hour.</p>", code)
	s.send(toEmail, "Your password reset code", body)
}

func (s *BrevoEmailService) SendPasswordChangedNotice(toEmail string) {
	body := "<p>Your password was changed. If this was not you, contact support immediately.</p>"
	s.send(toEmail, "Your password was changed", body)
}

func (s *BrevoEmailService) send(toEmail, subject, htmlContent string) {
	if s.apiKey == "" {
		config.Logger.Warnw("email not sent, BREVO_API_KEY not configured", "to", toEmail)
		return
	}

	payload := brevoPayload{
		Sender:      brevoSender{Name: s.fromName, Email: s.from},
		To:          []brevoRecipient{{Email: toEmail}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		config.Logger.Errorw("email payload marshal failed", "error", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, brevoAPIURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		config.Logger.Errorw("email request build failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		config.Logger.Errorw("email send failed", "error", err, "to", toEmail)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		config.Logger.Errorw("email rejected by provider", "status", resp.StatusCode, "to", toEmail)
		return
	}

	config.Logger.Infow("email sent", "to", toEmail, "subject", subject)
}
