package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Pet Adoption API
// @version 1.0
// @description Catálogo de mascotas en adopción, favoritos locales y consultas de adopción.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:           "pet-adoption",
		Short:         "Pet adoption browser",
		Long:          "Discover adoptable pets, filter the catalog, keep favorites and send adoption inquiries.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := newServeCmd()
	// sin subcomando se comporta como antes: levanta el server
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newPetsCmd())
	rootCmd.AddCommand(newFavoritesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
