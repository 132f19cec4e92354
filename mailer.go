package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"time"
)

// Vars, not consts, so tests can shorten them.
var (
	smtpDialTimeout    = 10 * time.Second
	smtpSessionTimeout = 30 * time.Second
)

// ContactForm is the JSON body of a contact submission. All five fields are
// required; validation happens at the handler, not here.
type ContactForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type mailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

func loadMailConfig() mailConfig {
	cfg := mailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		User:     os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASSWORD"),
	}

	// Default values for development (remove in production)
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.User == "" {
		cfg.User = "rajat.jaiswalmgs2@gmail.com"
	}
	return cfg
}

// composeContactEmail renders the plain-text message sent to the site owner.
func composeContactEmail(cfg mailConfig, form ContactForm, sentAt time.Time) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", form.Subject)
	body := fmt.Sprintf(`
New message from portfolio contact form:

Name: %s %s
Email: %s
Subject: %s

Message:
%s

Sent at: %s
`, form.FirstName, form.LastName, form.Email, form.Subject, form.Message,
		sentAt.Format("2006-01-02 15:04:05"))

	return []byte("To: " + cfg.User + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + form.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// sendContactEmail delivers one contact submission to the site owner's inbox.
// Exactly one attempt; any handshake, auth, or send failure comes back to the
// caller as a transport error.
func sendContactEmail(form ContactForm) error {
	cfg := loadMailConfig()
	if cfg.Password == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	msg := composeContactEmail(cfg, form, time.Now())
	addr := cfg.Host + ":" + cfg.Port

	// smtp.SendMail has no timeouts at all, so a dead or stalled relay
	// would hold the request open indefinitely. Bound the dial, then put a
	// deadline on the whole session: a relay that accepts the connection
	// and goes silent mid-handshake must also fail.
	conn, err := net.DialTimeout("tcp", addr, smtpDialTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp relay: %w", err)
	}
	if err := conn.SetDeadline(time.Now().Add(smtpSessionTimeout)); err != nil {
		conn.Close()
		return fmt.Errorf("set smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(cfg.User); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(cfg.User); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}
