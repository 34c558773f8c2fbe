package mailgateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	message := BuildMessage(
		"sender@example.com",
		[]string{"one@example.com", "two@example.com"},
		"Mega Millions Results",
		"Total ticket value: $10",
	)

	assert.Contains(t, message, "From: sender@example.com\n")
	assert.Contains(t, message, "To: one@example.com, two@example.com\n")
	assert.Contains(t, message, "Subject: Mega Millions Results\n\n")
	assert.Contains(t, message, "Total ticket value: $10\n")
}

func TestMockGatewayRecordsMessage(t *testing.T) {
	gateway := NewMockGateway()

	err := gateway.Send("sender@example.com", []string{"rcpt@example.com"}, "subject", "body")
	require.NoError(t, err)

	assert.Equal(t, 1, gateway.Sent)
	assert.Equal(t, "sender@example.com", gateway.From)
	assert.Equal(t, []string{"rcpt@example.com"}, gateway.To)
	assert.Equal(t, "subject", gateway.Subject)
	assert.Equal(t, "body", gateway.Body)
}

func TestMockGatewayFailure(t *testing.T) {
	gateway := NewMockGateway()
	gateway.Err = errors.New("relay unreachable")

	err := gateway.Send("sender@example.com", []string{"rcpt@example.com"}, "subject", "body")
	assert.Error(t, err)
	assert.Equal(t, 0, gateway.Sent)
}

func TestSMTPGatewayDefaultPort(t *testing.T) {
	gateway := NewSMTPGateway("localhost", "").(*SMTPGateway)
	assert.Equal(t, "25", gateway.Port)

	gateway = NewSMTPGateway("relay.example.com", "2525").(*SMTPGateway)
	assert.Equal(t, "2525", gateway.Port)
}
