package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/reviewrelay/internal/config"
	"github.com/dropDatabas3/reviewrelay/internal/email"
)

func newSMTPTestCmd(cfg *config.Config) *cobra.Command {
	var (
		to      string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "smtp-test",
		Short: "Envía un email de prueba con la configuración SMTP actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := email.SendProbe(ctx, email.NewResolver(cfg.SMTP), cfg.Addressing, to)
			if err != nil {
				return fmt.Errorf("smtp-test fallo: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok transport=%s from=%s to=%s message_id=%s\n",
				res.Kind, res.From, res.To, res.MessageID)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Destinatario (default REVIEW_DEST_EMAIL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout total del envío")
	return cmd
}
