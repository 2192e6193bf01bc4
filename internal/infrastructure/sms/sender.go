package sms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bazroba/pkg/logger"
)

// Sender delivers a text message to a phone number. Failures are logged by
// callers, not retried.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// TwilioSender posts to the Twilio Messages API.
type TwilioSender struct {
	httpClient *http.Client
	accountSID string
	authToken  string
	from       string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		httpClient: &http.Client{},
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
	}
}

func (s *TwilioSender) Send(ctx context.Context, phone, message string) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.accountSID)

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", s.from)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// LogSender is the development fallback when Twilio credentials are absent.
type LogSender struct{}

func (LogSender) Send(_ context.Context, phone, message string) error {
	logger.Info("SMS to %s: %s", phone, message)
	return nil
}
