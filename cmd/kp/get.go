// ABOUTME: kp get command: resolve an entry and copy its password
// ABOUTME: Multiple candidates go through the picker; fields print unless quiet

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/kp-go/internal/clipboard"
	"github.com/mauromedda/kp-go/internal/picker"
	"github.com/mauromedda/kp-go/internal/render"
	"github.com/mauromedda/kp-go/internal/search"
)

var (
	noClipboardFlag bool
	quietFlag       bool
)

// defaultGetFields are printed after a copy when the user names none.
var defaultGetFields = []string{"title", "username", "url"}

var getCmd = &cobra.Command{
	Use:   "get <entry> [field...]",
	Short: "Get password for an entry",
	Long:  "Find the entry best matching the given name, copy its password to the clipboard, and print the requested fields (title, username, and url by default).",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().BoolVarP(&noClipboardFlag, "no-clipboard-copy", "n", false, "Don't copy the password to the clipboard")
	getCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Don't print entry fields after copying")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	entries, err := openDatabase()
	if err != nil {
		return err
	}

	matches, err := search.Resolve(args[0], entries, search.DefaultExcludedGroups)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	fmt.Fprintln(out, render.Candidates(matches))

	selected, err := picker.Choose(matches)
	if err != nil {
		return err
	}
	chosen := matches[selected]

	if noClipboardFlag {
		return nil
	}

	if err := clipboard.Write(chosen.Password()); err != nil {
		return fmt.Errorf("copying password: %w", err)
	}

	if !quietFlag {
		fields := args[1:]
		if len(fields) == 0 {
			fields = defaultGetFields
		}
		fmt.Fprintln(errOut)
		for _, name := range fields {
			value, _ := chosen.Field(name)
			fmt.Fprintf(out, "%-10s %s\n", name+":", value)
		}
	}

	fmt.Fprintln(errOut, "\nPassword has been copied to clipboard.")
	return nil
}
