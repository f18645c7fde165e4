// ABOUTME: kp list command: all entries or those matching a term
// ABOUTME: The full listing sorts by lowercased title; search keeps stage order

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/kp-go/internal/render"
	"github.com/mauromedda/kp-go/internal/search"
	"github.com/mauromedda/kp-go/internal/vault"
)

var listCmd = &cobra.Command{
	Use:     "list [term]",
	Aliases: []string{"ls"},
	Short:   "List entries",
	Long:    "List entries, or only those matching the given term. The term can be anything the get command accepts.",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := openDatabase()
	if err != nil {
		return err
	}

	var shown []vault.Entry
	if len(args) == 0 {
		shown = sortedByTitle(search.FilterExcluded(entries, search.DefaultExcludedGroups))
	} else {
		shown, err = search.Resolve(args[0], entries, search.DefaultExcludedGroups)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Entries:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Entries(shown))
	return nil
}

func sortedByTitle(entries []vault.Entry) []vault.Entry {
	sorted := make([]vault.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})
	return sorted
}
