package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drillab/kata/catalog"
	"github.com/drillab/kata/drill"
)

var (
	verbose bool
	dbPath  string

	logger   *zap.Logger
	registry *drill.Registry
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kata",
	Short: "kata runs interview-prep drills and tracks the results.",
	Long: `kata runs interview-prep drills covering the classic embedded ` +
		`interview topics: C strings, bit manipulation, arrays, linked lists, ` +
		`stacks and queues, searching and sorting, state machines, and GATT.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file can set KATA_DB and friends; absence is fine.
		_ = godotenv.Load()

		if dbPath == "" {
			dbPath = os.Getenv("KATA_DB")
		}

		logger = zap.NewNop()
		if verbose {
			l, err := zap.NewDevelopment()
			cobra.CheckErr(err)
			logger = l
		}

		registry = catalog.NewRegistry()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log drill execution details")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"result database path without extension (default $KATA_DB)")
}
