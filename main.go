package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := LoadConfig(os.Getenv("NIGHTPAY_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	app := NewApp(cfg, logger, os.Stdin, os.Stdout)
	code := run(SetupCommands(app), os.Args[1:], os.Stdout)

	// syncing stderr fails on some terminals, nothing is buffered anyway
	_ = logger.Sync()

	os.Exit(code)
}

// run executes the command tree and returns the process exit status. Errors,
// including the invalid input diagnostic, are printed to out.
func run(rootCmd *cobra.Command, args []string, out io.Writer) int {
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	return 0
}
