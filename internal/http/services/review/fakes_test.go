package review

import (
	"context"
	"errors"
	"sync"

	"github.com/dropDatabas3/reviewrelay/internal/email"
)

// fakeTransport registra los mensajes y responde con err (o éxito si es nil).
type fakeTransport struct {
	user string
	kind string
	err  error

	mu   sync.Mutex
	sent []email.Message
}

func (f *fakeTransport) Send(_ context.Context, msg email.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return "", f.err
	}
	return "<fake-id@example.org>", nil
}

func (f *fakeTransport) Username() string { return f.user }

func (f *fakeTransport) Kind() string {
	if f.kind == "" {
		return email.KindHost
	}
	return f.kind
}

func (f *fakeTransport) messages() []email.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]email.Message(nil), f.sent...)
}

// fakeResolver retorna siempre el mismo transporte (o ErrNotConfigured si es nil).
type fakeResolver struct {
	transport email.Transport
	calls     int
}

func (r *fakeResolver) Resolve() (email.Transport, error) {
	r.calls++
	if r.transport == nil {
		return nil, email.ErrNotConfigured
	}
	return r.transport, nil
}

var errRelayDown = errors.New("dial tcp 127.0.0.1:25: connect: connection refused")
