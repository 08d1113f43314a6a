package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSMTP(t *testing.T, s Settings) *SMTPTransport {
	t.Helper()
	tr, err := NewResolver(s).Resolve()
	require.NoError(t, err)
	st, ok := tr.(*SMTPTransport)
	require.True(t, ok, "expected *SMTPTransport, got %T", tr)
	return st
}

func TestResolve_ServiceShorthand(t *testing.T) {
	st := resolveSMTP(t, Settings{Service: "gmail", User: "me@gmail.com", Pass: "app-pw"})

	assert.Equal(t, KindService, st.Kind())
	assert.Equal(t, "gmail", st.Service)
	assert.Equal(t, "smtp.gmail.com", st.Host)
	assert.Equal(t, 465, st.Port)
	assert.True(t, st.Secure)
	assert.Equal(t, "me@gmail.com", st.Username())
	assert.Equal(t, "app-pw", st.Pass)
}

func TestResolve_ServiceWinsOverHost(t *testing.T) {
	st := resolveSMTP(t, Settings{
		Service: "SendGrid",
		Host:    "smtp.example.org",
		Port:    "2525",
		Secure:  "true",
		User:    "apikey",
		Pass:    "pw",
	})

	assert.Equal(t, KindService, st.Kind())
	assert.Equal(t, "smtp.sendgrid.net", st.Host)
	assert.Equal(t, 587, st.Port)
	assert.False(t, st.Secure)
}

func TestResolve_UnknownServiceStillResolves(t *testing.T) {
	st := resolveSMTP(t, Settings{Service: "my-own-relay", User: "u", Pass: "p"})

	assert.Equal(t, KindService, st.Kind())
	assert.Equal(t, "localhost", st.Host)
	assert.Equal(t, 587, st.Port)
	assert.False(t, st.Secure)
}

func TestResolve_HostShorthand(t *testing.T) {
	st := resolveSMTP(t, Settings{Host: "smtp.example.org", Port: "2525", User: "u", Pass: "p"})

	assert.Equal(t, KindHost, st.Kind())
	assert.Empty(t, st.Service)
	assert.Equal(t, "smtp.example.org", st.Host)
	assert.Equal(t, 2525, st.Port)
	assert.False(t, st.Secure)
}

func TestResolve_SecureOnlyForExactTrue(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  false,
		"True":  false,
		"1":     false,
		"yes":   false,
		" true": false,
		"":      false,
	}
	for in, want := range cases {
		st := resolveSMTP(t, Settings{Host: "h", Port: "465", Secure: in, User: "u", Pass: "p"})
		assert.Equal(t, want, st.Secure, "SMTP_SECURE=%q", in)
	}
}

func TestResolve_PortParsing(t *testing.T) {
	cases := []struct {
		port   string
		secure string
		want   int
	}{
		{"587", "", 587},
		{"2525abc", "", 2525},
		{" 25", "", 25},
		{"abc", "", 587},
		{"abc", "true", 465},
		{"0", "", 587},
		{"-1", "true", 465},
	}
	for _, tc := range cases {
		st := resolveSMTP(t, Settings{Host: "h", Port: tc.port, Secure: tc.secure, User: "u", Pass: "p"})
		assert.Equal(t, tc.want, st.Port, "SMTP_PORT=%q SMTP_SECURE=%q", tc.port, tc.secure)
	}
}

func TestResolve_PartialConfigIsNotConfigured(t *testing.T) {
	cases := map[string]Settings{
		"empty":                {},
		"service without pass": {Service: "gmail", User: "u"},
		"service without user": {Service: "gmail", Pass: "p"},
		"host without port":    {Host: "h", User: "u", Pass: "p"},
		"host without user":    {Host: "h", Port: "25", Pass: "p"},
		"host without pass":    {Host: "h", Port: "25", User: "u"},
		"port without host":    {Port: "25", User: "u", Pass: "p"},
		"only secure":          {Secure: "true"},
		"both, no pass":        {Service: "gmail", Host: "h", Port: "25", User: "u"},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			tr, err := NewResolver(s).Resolve()
			require.ErrorIs(t, err, ErrNotConfigured)
			assert.Nil(t, tr)
		})
	}
}

func TestResolve_IsFreshPerCall(t *testing.T) {
	r := NewResolver(Settings{Host: "h", Port: "25", User: "u", Pass: "p"})
	a, err := r.Resolve()
	require.NoError(t, err)
	b, err := r.Resolve()
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, a, b)
}

func TestParseLeadingInt(t *testing.T) {
	n, ok := parseLeadingInt("  +42x")
	require.True(t, ok)
	assert.Equal(t, 42, n)

	n, ok = parseLeadingInt("-7")
	require.True(t, ok)
	assert.Equal(t, -7, n)

	_, ok = parseLeadingInt("")
	assert.False(t, ok)
	_, ok = parseLeadingInt("-")
	assert.False(t, ok)
	_, ok = parseLeadingInt("99999999999999999999")
	assert.False(t, ok)
}
