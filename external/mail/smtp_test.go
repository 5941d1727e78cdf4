package mail

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
	"nftmarket/log"
)

type capture struct {
	msgs []string
}

func newCaptured(t *testing.T, from string, perSec float64) (*SMTP, *capture) {
	t.Helper()
	s, err := NewSMTP("smtp.test", 587, "bot@market.test", "pw", from, perSec)
	require.NoError(t, err)
	c := &capture{}
	s.send = func(_ context.Context, m *gomail.Msg) error {
		var buf bytes.Buffer
		if _, err := m.WriteTo(&buf); err != nil {
			return err
		}
		c.msgs = append(c.msgs, buf.String())
		return nil
	}
	return s, c
}

func TestSendBuildsHTMLMessage(t *testing.T) {
	s, c := newCaptured(t, "", 100)
	require.NoError(t, s.Send(context.Background(), "alice@example.com", "Item sold", "<p>sold</p>"))
	require.Len(t, c.msgs, 1)
	msg := c.msgs[0]
	assert.Contains(t, msg, "From: <bot@market.test>")
	assert.Contains(t, msg, "To: <alice@example.com>")
	assert.Contains(t, msg, "Subject: Item sold")
	assert.Contains(t, msg, "text/html")
	assert.Contains(t, msg, "<p>sold</p>")
}

func TestSendRejectsHeaderInjection(t *testing.T) {
	s, c := newCaptured(t, "bot@market.test", 100)
	assert.Error(t, s.Send(context.Background(), "a@example.com\r\nBcc: x@example.com", "hi", "body"))
	assert.Empty(t, c.msgs)

	_, err := NewSMTP("smtp.test", 25, "", "", "bot@market.test\r\nBcc: x@example.com", 100)
	assert.Error(t, err, "sender is checked too")
}

func TestSendHonoursRateAndContext(t *testing.T) {
	s, _ := newCaptured(t, "bot@market.test", 1)
	s.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	require.NoError(t, s.Send(context.Background(), "a@example.com", "one", "body"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, s.Send(ctx, "a@example.com", "two", "body"))
}

func TestSendWrapsRelayErrors(t *testing.T) {
	s, _ := newCaptured(t, "bot@market.test", 100)
	s.send = func(context.Context, *gomail.Msg) error { return errors.New("550 mailbox unavailable") }
	err := s.Send(context.Background(), "gone@example.com", "hi", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone@example.com")
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, NewLog(log.Nop()).Send(context.Background(), "a@example.com", "hi", "body"))
}
