package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"alice@gmail.com":       "a…@g….com",
		" Bob@Mail.Example.org": "b…@m….example.org",
		"a@b.io":                "a@b.io",
		"apikey":                "a…y",
		"abc":                   "***",
		"":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskEmail(in), "input %q", in)
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "unset", MaskSecret(""))
	assert.Equal(t, "set", MaskSecret("hunter2"))
}
