package email

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed wellknown.yaml
var wellKnownYAML []byte

// Endpoint es la dirección de un servicio SMTP conocido.
type Endpoint struct {
	Name   string `yaml:"name"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secure bool   `yaml:"secure"`
}

type wellKnownEntry struct {
	Endpoint `yaml:",inline"`
	Aliases  []string `yaml:"aliases"`
	Domains  []string `yaml:"domains"`
}

// wellKnownTable indexa endpoints por nombre, alias y dominio normalizados.
type wellKnownTable map[string]Endpoint

var wellKnown = mustParseWellKnown(wellKnownYAML)

func parseWellKnown(b []byte) (wellKnownTable, error) {
	var entries []wellKnownEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse well-known services: %w", err)
	}

	t := make(wellKnownTable, len(entries)*3)
	for _, e := range entries {
		if e.Name == "" || e.Host == "" || e.Port <= 0 {
			return nil, fmt.Errorf("well-known service %q: name, host and port are required", e.Name)
		}
		keys := append([]string{e.Name}, e.Aliases...)
		keys = append(keys, e.Domains...)
		for _, k := range keys {
			t[normalizeServiceKey(k)] = e.Endpoint
		}
	}
	return t, nil
}

func mustParseWellKnown(b []byte) wellKnownTable {
	t, err := parseWellKnown(b)
	if err != nil {
		panic(err)
	}
	return t
}

// normalizeServiceKey pasa a minúsculas y descarta todo lo que no sea [a-z0-9.-].
func normalizeServiceKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupService busca un servicio conocido por nombre, alias o dominio.
func LookupService(name string) (Endpoint, bool) {
	key := normalizeServiceKey(name)
	if key == "" {
		return Endpoint{}, false
	}
	ep, ok := wellKnown[key]
	return ep, ok
}
