// ABOUTME: Root cobra command with the persistent database flags
// ABOUTME: Resolves config layers and opens the vault for subcommands

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/kp-go/internal/config"
	"github.com/mauromedda/kp-go/internal/log"
	"github.com/mauromedda/kp-go/internal/termio"
	"github.com/mauromedda/kp-go/internal/vault"
)

var (
	dbFileFlag  string
	keyFileFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "kp",
	Short:         "Lookup tool for KeePass password databases",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbFileFlag, "db-file", "d", "", "Path to the KDBX database file")
	rootCmd.PersistentFlags().StringVarP(&keyFileFlag, "key-file", "k", "", "Path to the key file")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")
}

// openDatabase resolves the database location from flags, environment, and
// the ~/.kpconfig file, prompts for the master password, and loads all
// entries. The entry order is stable for the rest of the invocation.
func openDatabase() ([]vault.Entry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	src := config.Sources{FlagDB: dbFileFlag, FlagKey: keyFileFlag, File: cfg}
	dbPath, err := src.DatabasePath()
	if err != nil {
		return nil, err
	}

	password, err := termio.ReadPassword("Password: ")
	if err != nil {
		return nil, err
	}

	return vault.Open(dbPath, src.KeyFilePath(), password)
}
