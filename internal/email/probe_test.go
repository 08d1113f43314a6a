package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	err  error
	sent []Message
}

func (r *recordingTransport) Send(_ context.Context, msg Message) (string, error) {
	r.sent = append(r.sent, msg)
	if r.err != nil {
		return "", r.err
	}
	return "<probe@test>", nil
}

func (r *recordingTransport) Username() string { return "user@relay.test" }
func (r *recordingTransport) Kind() string     { return KindHost }

type staticResolver struct {
	t   Transport
	err error
}

func (s staticResolver) Resolve() (Transport, error) { return s.t, s.err }

func TestProbeMessage(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msg := ProbeMessage("from@x.test", "to@x.test", now)

	assert.Equal(t, "from@x.test", msg.From)
	assert.Equal(t, "to@x.test", msg.To)
	assert.Contains(t, msg.Text, "01 Mar 2024, 10:00:00 UTC")
	assert.Contains(t, msg.HTML, "01 Mar 2024, 10:00:00 UTC")
}

func TestSendProbe_DefaultsRecipient(t *testing.T) {
	tr := &recordingTransport{}
	res, err := SendProbe(context.Background(), staticResolver{t: tr},
		Addressing{DefaultTo: "reviews@example.com", DefaultFrom: "no-reply@example.com"}, "")
	require.NoError(t, err)

	assert.Equal(t, "reviews@example.com", res.To)
	assert.Equal(t, "user@relay.test", res.From)
	assert.Equal(t, "<probe@test>", res.MessageID)
	require.Len(t, tr.sent, 1)
}

func TestSendProbe_NotConfigured(t *testing.T) {
	_, err := SendProbe(context.Background(), staticResolver{err: ErrNotConfigured}, Addressing{}, "x@y.test")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendProbe_SendError(t *testing.T) {
	boom := errors.New("535 5.7.8 authentication failed")
	_, err := SendProbe(context.Background(), staticResolver{t: &recordingTransport{err: boom}}, Addressing{}, "x@y.test")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "code: auth")
}
