// Package mailer is a thin SMTP client used for outbound account mail.
// It dials the server per message, so there is no long-lived connection
// to manage or recover.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool // issue STARTTLS after connecting
	From     string
}

// Client sends mail through a single configured SMTP server.
type Client struct {
	cfg  Config
	auth smtp.Auth
}

// NewClient creates a new mail client. It does not dial; a bad server
// address only surfaces on the first send.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mailer: host is required")
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	client := &Client{cfg: cfg}
	if cfg.Username != "" && cfg.Password != "" {
		client.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return client, nil
}

// Send delivers a single plain-text message.
func (c *Client) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("mailer: no recipients specified")
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	conn, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("mailer: failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if c.cfg.UseTLS {
		if err := conn.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
			return fmt.Errorf("mailer: failed to start TLS: %w", err)
		}
	}
	if c.auth != nil {
		if err := conn.Auth(c.auth); err != nil {
			return fmt.Errorf("mailer: failed to authenticate: %w", err)
		}
	}

	if err := conn.Mail(c.cfg.From); err != nil {
		return fmt.Errorf("mailer: failed to set sender: %w", err)
	}
	for _, recipient := range to {
		if err := conn.Rcpt(recipient); err != nil {
			return fmt.Errorf("mailer: failed to set recipient %s: %w", recipient, err)
		}
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("mailer: failed to open data writer: %w", err)
	}
	if _, err := w.Write(c.buildMessage(to, subject, body)); err != nil {
		return fmt.Errorf("mailer: failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: failed to close data writer: %w", err)
	}

	return conn.Quit()
}

// SendWelcome sends the post-registration greeting.
func (c *Client) SendWelcome(to, username string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Your free 24-hour trial starts now.\n", username)
	return c.Send([]string{to}, "Welcome to Flashcards", body)
}

func (c *Client) buildMessage(to []string, subject, body string) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", c.cfg.From),
		fmt.Sprintf("To: %s", strings.Join(to, ", ")),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}
	return []byte(strings.Join(headers, "\r\n"))
}
