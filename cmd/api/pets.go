package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pet-adoption/internal/domain/pets"
)

func newPetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse the pet catalog",
	}
	cmd.AddCommand(newPetsListCmd())
	return cmd
}

func newPetsListCmd() *cobra.Command {
	var (
		f      = pets.DefaultFilter()
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets matching type, age category and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := pets.NewService(a.catalog).List(cmd.Context(), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(pets.ToPetResponses(items))
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tAGE\tLOCATION")
			for _, p := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Type, p.AgeCategory, p.Location)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&f.Type, "type", f.Type, `animal type (dog, cat) or "all"`)
	cmd.Flags().StringVar(&f.Age, "age", f.Age, `age category (young, adult, senior) or "all"`)
	cmd.Flags().StringVar(&f.Location, "location", f.Location, "case-insensitive location substring")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
