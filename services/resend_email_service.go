package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Mailer sends the account emails
type Mailer interface {
	SendOTP(ctx context.Context, email, otp string, validFor time.Duration) error
	SendWelcome(ctx context.Context, email, name string) error
}

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey   string
	from     string
	siteName string
	endpoint string
	http     *http.Client
}

// NewResendClient creates a new Resend client
func NewResendClient(siteName string) *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@contact.modeva.shop"
	}

	return &ResendClient{
		apiKey:   apiKey,
		from:     from,
		siteName: siteName,
		endpoint: "https://api.resend.com/emails",
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOTP mails a one-time passcode
func (r *ResendClient) SendOTP(ctx context.Context, email, otp string, validFor time.Duration) error {
	subject := fmt.Sprintf("Your %s Login OTP", r.siteName)
	return r.send(ctx, email, subject, r.buildOTPHTML(otp, validFor))
}

// SendWelcome mails the post-registration greeting
func (r *ResendClient) SendWelcome(ctx context.Context, email, name string) error {
	subject := fmt.Sprintf("Welcome to %s!", r.siteName)
	return r.send(ctx, email, subject, r.buildWelcomeHTML(name))
}

func (r *ResendClient) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    html,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] %q sent to %s", subject, to)
	return nil
}

func (r *ResendClient) buildOTPHTML(otp string, validFor time.Duration) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Helvetica Neue', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 60px 20px;">
      <div style="font-size: 24px; font-weight: 700; margin-bottom: 48px;">%s</div>
      <p style="font-size: 17px; color: #626262; margin: 0 0 24px 0;">Your one-time passcode is:</p>
      <div style="background: #f5f5f5; padding: 24px; font-size: 32px; font-weight: 700; letter-spacing: 8px;">%s</div>
      <p style="font-size: 13px; color: #626262; margin-top: 40px;">
        This OTP is valid for %d minutes. Please do not share it with anyone.
      </p>
    </div>
  </body>
</html>`, r.siteName, otp, int(validFor.Minutes()))
}

func (r *ResendClient) buildWelcomeHTML(name string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Helvetica Neue', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 60px 20px;">
      <div style="font-size: 24px; font-weight: 700; margin-bottom: 48px;">%s</div>
      <p style="font-size: 17px; margin: 0 0 24px 0;">Dear <span style="font-weight: 600;">%s</span>,</p>
      <p style="font-size: 17px; color: #626262; margin: 0 0 24px 0;">
        Your account has been created successfully. You can now browse the collection, track your orders,
        manage your wishlist and get exclusive offers.
      </p>
      <p style="font-size: 13px; color: #626262; margin-top: 40px;">Thank you for choosing %s!</p>
    </div>
  </body>
</html>`, r.siteName, name, r.siteName)
}

// LogMailer writes the emails to the log instead of sending them.
// Used in development when RESEND_API_KEY is not set.
type LogMailer struct{}

func (LogMailer) SendOTP(_ context.Context, email, otp string, validFor time.Duration) error {
	log.Printf("📧 [dev-mail] OTP for %s: %s (valid %s)", email, otp, validFor)
	return nil
}

func (LogMailer) SendWelcome(_ context.Context, email, name string) error {
	log.Printf("📧 [dev-mail] welcome email for %s <%s>", name, email)
	return nil
}
