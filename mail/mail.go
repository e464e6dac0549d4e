// Package mail delivers the daily brief over SMTP. Credentials come from
// the config file, with environment overrides so a scheduled CI job can
// send without a checked-in config.
package mail

import (
	"crypto/rand"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/wealthpulse/wealthpulse"
)

// Credentials are the resolved sender, password, and recipient list.
type Credentials struct {
	Sender     string
	Password   string
	Recipients []string
	Host       string
	Port       int
}

// Resolve merges the email config with the environment overrides
// (GMAIL_ADDRESS, GMAIL_APP_PASSWORD, GMAIL_RECIPIENTS). When all three
// overrides are present the config's enabled flag is ignored, so a CI
// run can deliver without editing the config.
func Resolve(cfg wealthpulse.EmailConfig) (*Credentials, error) {
	envSender := os.Getenv("GMAIL_ADDRESS")
	envPassword := os.Getenv("GMAIL_APP_PASSWORD")
	envRecipients := os.Getenv("GMAIL_RECIPIENTS")

	c := &Credentials{
		Sender:   cfg.SenderEmail,
		Password: cfg.AppPassword,
		Host:     cfg.SMTPServer,
		Port:     cfg.SMTPPort,
	}
	if envSender != "" {
		c.Sender = envSender
	}
	if envPassword != "" {
		c.Password = envPassword
	}
	if envRecipients != "" {
		for _, r := range strings.Split(envRecipients, ",") {
			if r = strings.TrimSpace(r); r != "" {
				c.Recipients = append(c.Recipients, r)
			}
		}
	} else if cfg.RecipientEmail != "" {
		c.Recipients = []string{cfg.RecipientEmail}
	}

	ciMode := envSender != "" && envPassword != "" && envRecipients != ""
	if !ciMode && !cfg.Enabled {
		return nil, errors.New("email is disabled in config: set email.enabled: true")
	}
	if c.Sender == "" || c.Password == "" || len(c.Recipients) == 0 {
		return nil, errors.New("email config incomplete: need sender_email, app_password, and recipient_email")
	}
	if c.Host == "" {
		c.Host = "smtp.gmail.com"
	}
	if c.Port == 0 {
		c.Port = 465
	}
	return c, nil
}

// Message builds a multipart/alternative MIME message with a plain text
// and an HTML part. Both parts are base64 encoded so long lines in the
// rendered HTML stay within the RFC 5322 line limit.
func Message(from string, to []string, subject, htmlBody, textBody string) string {
	boundary := generateBoundary()

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary))
	msg.WriteString("\r\n")

	if textBody != "" {
		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(encodeBase64WithLineBreaks(textBody))
		msg.WriteString("\r\n")
	}

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(encodeBase64WithLineBreaks(htmlBody))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return msg.String()
}

// Send resolves the credentials, builds the message, and delivers it.
func Send(cfg wealthpulse.EmailConfig, subject, htmlBody, textBody string) error {
	creds, err := Resolve(cfg)
	if err != nil {
		return err
	}
	msg := Message(creds.Sender, creds.Recipients, subject, htmlBody, textBody)
	addr := fmt.Sprintf("%s:%d", creds.Host, creds.Port)
	auth := smtp.PlainAuth("", creds.Sender, creds.Password, creds.Host)
	return sendWithTLS(addr, creds.Host, auth, creds.Sender, creds.Recipients, msg)
}

// sendWithTLS connects over implicit TLS (Gmail's port 465) and falls
// back to a STARTTLS upgrade when the direct handshake is refused.
func sendWithTLS(addr, host string, auth smtp.Auth, from string, to []string, msg string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return sendWithSTARTTLS(addr, host, auth, from, to, msg)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer client.Close()

	return submit(client, auth, from, to, msg)
}

// sendWithSTARTTLS connects in plain text and upgrades the session.
func sendWithSTARTTLS(addr, host string, auth smtp.Auth, from string, to []string, msg string) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("connecting to SMTP server %s: %w", addr, err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return fmt.Errorf("starting TLS: %w", err)
	}
	return submit(client, auth, from, to, msg)
}

func submit(client *smtp.Client, auth smtp.Auth, from string, to []string, msg string) error {
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("setting mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("setting recipient %s: %w", rcpt, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("starting data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing data writer: %w", err)
	}
	return client.Quit()
}

// generateBoundary creates a unique MIME boundary string.
func generateBoundary() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "wealthpulse_boundary_fallback"
	}
	return fmt.Sprintf("wealthpulse_%x", b)
}

// encodeBase64WithLineBreaks encodes content as base64 with 76-character
// lines per RFC 2045.
func encodeBase64WithLineBreaks(content string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))

	var result strings.Builder
	const lineLen = 76
	for i := 0; i < len(encoded); i += lineLen {
		end := i + lineLen
		if end > len(encoded) {
			end = len(encoded)
		}
		result.WriteString(encoded[i:end])
		if end < len(encoded) {
			result.WriteString("\r\n")
		}
	}
	return result.String()
}
