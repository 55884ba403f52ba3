package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			// newApp ya migra cuando hay DB configurada
			a, err := newApp(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.db == nil {
				return errors.New("no database configured: set PETS_DB_DRIVER and PETS_DB_DSN")
			}

			a.log.Info("migrations complete", map[string]any{"driver": a.cfg.DB.Driver})
			return nil
		},
	}
}
