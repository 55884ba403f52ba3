package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage saved pets",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print saved pet ids, in the order they were saved",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), os.Stderr)
				if err != nil {
					return err
				}
				defer a.Close()

				for _, id := range a.favorites().List(cmd.Context()) {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <pet-id>",
			Short: "Save a pet",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), os.Stderr)
				if err != nil {
					return err
				}
				defer a.Close()

				favs := a.favorites()
				favs.Add(cmd.Context(), args[0])
				printStatus(cmd, args[0], favs.IsFavorite(cmd.Context(), args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <pet-id>",
			Short: "Remove a saved pet",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), os.Stderr)
				if err != nil {
					return err
				}
				defer a.Close()

				favs := a.favorites()
				favs.Remove(cmd.Context(), args[0])
				printStatus(cmd, args[0], favs.IsFavorite(cmd.Context(), args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <pet-id>",
			Short: "Save or unsave a pet",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), os.Stderr)
				if err != nil {
					return err
				}
				defer a.Close()

				printStatus(cmd, args[0], a.favorites().Toggle(cmd.Context(), args[0]))
				return nil
			},
		},
	)
	return cmd
}

func printStatus(cmd *cobra.Command, petID string, favorite bool) {
	state := "not saved"
	if favorite {
		state = "saved"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", petID, state)
}
