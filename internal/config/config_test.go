package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap_Defaults(t *testing.T) {
	c, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 3000, c.Server.Port)
	assert.Equal(t, ":3000", c.Server.Addr())
	assert.Equal(t, []string{"*"}, c.Server.CORSAllowedOrigins)
	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, "info", c.App.LogLevel)

	assert.Empty(t, c.SMTP.Service)
	assert.Empty(t, c.SMTP.Host)
	assert.Equal(t, "no-reply@example.com", c.Addressing.DefaultFrom)
	assert.Equal(t, "reviews@example.com", c.Addressing.DefaultTo)
	assert.Empty(t, c.Addressing.From)
	assert.Empty(t, c.Addressing.To)
}

func TestFromMap_AllVariables(t *testing.T) {
	c, err := FromMap(map[string]string{
		"PORT":                      "8080",
		"SMTP_SERVICE":              "gmail",
		"SMTP_HOST":                 "smtp.example.org",
		"SMTP_PORT":                 "465",
		"SMTP_USER":                 "bot@example.org",
		"SMTP_PASS":                 "pw",
		"SMTP_SECURE":               "true",
		"REVIEW_DEST_EMAIL":         "owner@example.org",
		"EMAIL_FROM":                "reviews@example.org",
		"REVIEW_DEFAULT_DEST_EMAIL": "fallback@example.org",
		"EMAIL_DEFAULT_FROM":        "noreply@example.org",
		"CORS_ALLOWED_ORIGINS":      "https://a.example,https://b.example",
		"APP_ENV":                   "prod",
		"LOG_LEVEL":                 "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.Server.CORSAllowedOrigins)
	assert.Equal(t, "gmail", c.SMTP.Service)
	assert.Equal(t, "smtp.example.org", c.SMTP.Host)
	assert.Equal(t, "465", c.SMTP.Port)
	assert.Equal(t, "true", c.SMTP.Secure)
	assert.Equal(t, "bot@example.org", c.SMTP.User)
	assert.Equal(t, "pw", c.SMTP.Pass)
	assert.Equal(t, "owner@example.org", c.Addressing.To)
	assert.Equal(t, "reviews@example.org", c.Addressing.From)
	assert.Equal(t, "fallback@example.org", c.Addressing.DefaultTo)
	assert.Equal(t, "noreply@example.org", c.Addressing.DefaultFrom)
	assert.Equal(t, "prod", c.App.Env)
}

func TestFromMap_InvalidPort(t *testing.T) {
	_, err := FromMap(map[string]string{"PORT": "not-a-port"})
	require.Error(t, err)
}

// isolateEnv deja sin definir las variables que carga testdata/review.env
// y las restaura al terminar el test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "REVIEW_DEST_EMAIL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateEnv(t)

	c, err := Load("testdata/review.env")
	require.NoError(t, err)

	assert.Equal(t, 8081, c.Server.Port)
	assert.Equal(t, "smtp.example.org", c.SMTP.Host)
	assert.Equal(t, "2525", c.SMTP.Port)
	assert.Equal(t, "relay@example.org", c.SMTP.User)
	assert.Equal(t, "s3cret", c.SMTP.Pass)
	assert.Equal(t, "owner@example.org", c.Addressing.To)
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SMTP_HOST", "smtp.override.org")

	c, err := Load("testdata/review.env")
	require.NoError(t, err)
	assert.Equal(t, "smtp.override.org", c.SMTP.Host)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	_, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)
}
