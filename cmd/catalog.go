package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/learnlab/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the course catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects, courses and available card counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.log.Sync()

		cat, err := d.catalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		printCatalog(cmd.OutOrStdout(), cat)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%-10s  %-18s  %-24s  %5s\n", "Subject", "Course", "Name", "Cards")
	fmt.Fprintln(w, strings.Repeat("─", 63))

	courses := 0
	for _, s := range cat.Subjects() {
		for _, c := range s.Courses {
			fmt.Fprintf(w, "%-10s  %-18s  %-24s  %5d\n", s.ID, c.ID, c.Name, catalog.AvailableCards(c))
			courses++
		}
	}
	fmt.Fprintf(w, "\n%d courses, %d cards\n", courses, cat.CardCount())
}
