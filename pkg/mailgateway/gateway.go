// Package mailgateway provides mail delivery for ticket reports.
package mailgateway

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// Gateway represents a mail delivery gateway interface
type Gateway interface {
	Send(from string, to []string, subject, body string) error
}

// SMTPGateway delivers mail through a plain SMTP relay, without
// authentication or TLS
type SMTPGateway struct {
	Host string
	Port string
}

// MockGateway records the last message instead of delivering it, for testing
type MockGateway struct {
	From    string
	To      []string
	Subject string
	Body    string
	Sent    int
	Err     error
}

// NewSMTPGateway creates a new SMTP gateway. Port defaults to 25.
func NewSMTPGateway(host, port string) Gateway {
	if port == "" {
		port = "25"
	}
	return &SMTPGateway{
		Host: host,
		Port: port,
	}
}

// NewMockGateway creates a new mock mail gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// Send delivers a plain-text message through the relay. A failure is returned
// to the caller; there is no retry and no fallback.
func (g *SMTPGateway) Send(from string, to []string, subject, body string) error {
	message := BuildMessage(from, to, subject, body)
	addr := net.JoinHostPort(g.Host, g.Port)
	if err := smtp.SendMail(addr, nil, from, to, []byte(message)); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}
	return nil
}

// Send records the message on the mock gateway
func (g *MockGateway) Send(from string, to []string, subject, body string) error {
	if g.Err != nil {
		return g.Err
	}
	g.From = from
	g.To = to
	g.Subject = subject
	g.Body = body
	g.Sent++
	return nil
}

// BuildMessage assembles the raw mail message, joining multiple recipients
// with commas in the To header
func BuildMessage(from string, to []string, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\nTo: %s\nSubject: %s\n\n%s\n",
		from, strings.Join(to, ", "), subject, body,
	)
}
