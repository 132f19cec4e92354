package main

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestLoadMailConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASSWORD", "")

	cfg := loadMailConfig()
	if cfg.Host != "smtp.gmail.com" {
		t.Errorf("Host = %q, want the gmail default", cfg.Host)
	}
	if cfg.Port != "587" {
		t.Errorf("Port = %q, want 587", cfg.Port)
	}
	if cfg.User == "" {
		t.Error("User default missing")
	}
	if cfg.Password != "" {
		t.Error("Password must have no default")
	}
}

func TestLoadMailConfigFromEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USER", "owner@example.com")
	t.Setenv("EMAIL_PASSWORD", "hunter2")

	cfg := loadMailConfig()
	if cfg.Host != "mail.example.com" || cfg.Port != "2525" ||
		cfg.User != "owner@example.com" || cfg.Password != "hunter2" {
		t.Errorf("config = %+v, env values not picked up", cfg)
	}
}

func TestComposeContactEmail(t *testing.T) {
	cfg := mailConfig{User: "owner@example.com"}
	form := ContactForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Collaboration",
		Message:   "I enjoyed your portfolio.",
	}
	sentAt := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	msg := string(composeContactEmail(cfg, form, sentAt))

	for _, want := range []string{
		"Subject: Portfolio Contact: Collaboration",
		"Reply-To: ada@example.com",
		"To: owner@example.com",
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"I enjoyed your portfolio.",
		"Sent at: 2026-08-29 10:30:00",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("composed email missing %q\n%s", want, msg)
		}
	}

	if !strings.Contains(msg, "\r\n\r\n") {
		t.Error("missing blank line between headers and body")
	}
}

// A relay that accepts the connection and then never sends its greeting must
// not hold the request open past the session deadline.
func TestSendContactEmailTimesOutOnStalledRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		// Hold the connection open silently.
		<-done
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	t.Setenv("SMTP_HOST", host)
	t.Setenv("SMTP_PORT", port)
	t.Setenv("EMAIL_USER", "owner@example.com")
	t.Setenv("EMAIL_PASSWORD", "hunter2")

	oldSession := smtpSessionTimeout
	smtpSessionTimeout = 200 * time.Millisecond
	defer func() { smtpSessionTimeout = oldSession }()

	start := time.Now()
	err = sendContactEmail(ContactForm{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Subject: "Hi", Message: "Test",
	})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected an error from a silent relay")
	}
	if elapsed > 5*time.Second {
		t.Errorf("send took %v, deadline did not bound the session", elapsed)
	}
}

func TestSendContactEmailRequiresCredentials(t *testing.T) {
	t.Setenv("EMAIL_PASSWORD", "")

	err := sendContactEmail(ContactForm{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Subject: "Hi", Message: "Test",
	})
	if err == nil {
		t.Fatal("expected an error with no SMTP credentials configured")
	}
	if !strings.Contains(err.Error(), "not configured") {
		t.Errorf("err = %v, want a configuration error", err)
	}
}
