package mailer

import (
	"bytes"
	"errors"
	"io"
	"mime/quotedprintable"
	"strings"
	"testing"
	"time"

	"bonded-wms/models"
	"bonded-wms/services"
	"bonded-wms/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

var today = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func expiring(number, warehouse string, days int) services.ExpiringLicense {
	return services.ExpiringLicense{
		License: models.BondLicense{
			LicenseNumber: number,
			ExpiryDate:    types.DateOf(today.AddDate(0, 0, days)),
		},
		WarehouseName: warehouse,
		DaysLeft:      days,
	}
}

// render returns the decoded html body of msg.
func render(t *testing.T, msg *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	_, encoded, found := strings.Cut(buf.String(), "\r\n\r\n")
	require.True(t, found)
	body, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(encoded)))
	require.NoError(t, err)
	return string(body)
}

func TestExpiryReminderContent(t *testing.T) {
	cfg := Config{From: "wms@example.com", To: []string{"customs@example.com"}}
	msg := ExpiryReminder(cfg, []services.ExpiringLicense{
		expiring("BL-7", "Store <A>", 3),
		expiring("BL-9", "Store B", 20),
	}, today)
	require.NotNil(t, msg)

	assert.Equal(t, []string{"Bond licenses expiring soon (2)"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"customs@example.com"}, msg.GetHeader("To"))

	body := render(t, msg)
	assert.Contains(t, body, "BL-7")
	assert.Contains(t, body, "BL-9")
	assert.Contains(t, body, "Store &lt;A&gt;")
	assert.NotContains(t, body, "Store <A>")
}

func TestExpiryReminderEmpty(t *testing.T) {
	assert.Nil(t, ExpiryReminder(Config{}, nil, today))
}

func TestSendExpiryReminder(t *testing.T) {
	licenses := []services.ExpiringLicense{expiring("BL-1", "Main", 1)}

	t.Run("nothing to send", func(t *testing.T) {
		sender := &fakeSender{}
		sent, err := SendExpiryReminder(sender, Config{}, nil, today)
		require.NoError(t, err)
		assert.False(t, sent)
		assert.Empty(t, sender.sent)
	})

	t.Run("no recipients", func(t *testing.T) {
		sender := &fakeSender{}
		sent, err := SendExpiryReminder(sender, Config{From: "wms@example.com"}, licenses, today)
		assert.Error(t, err)
		assert.False(t, sent)
		assert.Empty(t, sender.sent)
	})

	t.Run("sends one message", func(t *testing.T) {
		sender := &fakeSender{}
		cfg := Config{From: "wms@example.com", To: []string{"a@example.com", "b@example.com"}}
		sent, err := SendExpiryReminder(sender, cfg, licenses, today)
		require.NoError(t, err)
		assert.True(t, sent)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, cfg.To, sender.sent[0].GetHeader("To"))
	})

	t.Run("dial failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		sent, err := SendExpiryReminder(&fakeSender{err: boom}, Config{To: []string{"a@example.com"}}, licenses, today)
		assert.ErrorIs(t, err, boom)
		assert.False(t, sent)
	})
}
