package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/reviewrelay/internal/config"
	"github.com/dropDatabas3/reviewrelay/internal/observability/logger"
)

// version se setea con -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	// cfg se carga en PersistentPreRunE y lo usan los subcomandos
	cfg := new(config.Config)

	root := &cobra.Command{
		Use:           "reviewrelay",
		Short:         "Relay HTTP → SMTP para reseñas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(envFiles...)
			if err != nil {
				return err
			}
			*cfg = *loaded

			logger.Init(logger.Config{
				Env:         cfg.App.Env,
				Level:       cfg.App.LogLevel,
				ServiceName: "reviewrelay",
				Version:     version,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Archivos .env a cargar (default .env, opcional)")

	serveCmd := newServeCmd(cfg)
	root.AddCommand(serveCmd)
	root.AddCommand(newSMTPTestCmd(cfg))

	// sin subcomando: serve
	root.RunE = serveCmd.RunE

	return root
}
