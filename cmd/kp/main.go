// ABOUTME: CLI entry point for kp
// ABOUTME: Executes the root command and maps failures to exit code 1

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
