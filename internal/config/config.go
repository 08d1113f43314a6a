// Package config carga la configuración del proceso desde variables de entorno.
//
// Se construye una sola vez al arrancar (ver cmd/reviewrelay) y se pasa por
// referencia a los componentes; nada fuera de este paquete lee os.Getenv.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dropDatabas3/reviewrelay/internal/email"
)

// Config es la configuración completa del servicio.
type Config struct {
	App    App
	Server Server

	// SMTP describe cómo llegar al relay (service-shorthand o host-shorthand).
	SMTP email.Settings

	// Addressing resuelve remitente y destinatario de los emails de reseñas.
	Addressing email.Addressing
}

// App agrupa settings de runtime (logging).
type App struct {
	// dev | prod
	Env      string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server agrupa settings del listener HTTP.
type Server struct {
	Port               int      `env:"PORT" envDefault:"3000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Addr retorna la dirección de escucha (":<port>").
func (s Server) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// Load carga los archivos .env indicados (o ".env" si no se indica ninguno)
// y parsea el entorno del proceso. Un .env inexistente no es error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv no pisa variables ya definidas en el entorno
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

// FromMap parsea la configuración desde un mapa en lugar del entorno del proceso.
// Útil en tests y en el comando smtp-test con overrides.
func FromMap(environ map[string]string) (*Config, error) {
	// env usa os.Environ() cuando Environment es nil
	if environ == nil {
		environ = map[string]string{}
	}
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}
