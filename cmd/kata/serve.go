package main

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/monitoring"
	"github.com/drillab/kata/recording"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the drill dashboard over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := drill.RunnerBuilder{}.
			WithRegistry(registry).
			WithLogger(logger).
			WithOutput(os.Stdout).
			Build()

		monitor := monitoring.NewMonitor().WithPortNumber(servePort)
		monitor.RegisterRegistry(registry)
		monitor.RegisterRunner(runner)

		if dbPath != "" {
			reader := recording.NewSQLiteReader(dbPath)
			defer reader.Close()

			reader.MapTable(drill.ResultTable, drill.Result{})
			monitor.RegisterResultReader(reader)
		}

		port := monitor.StartServer()

		if serveOpen {
			_ = browser.OpenURL(fmt.Sprintf("http://localhost:%d", port))
		}

		select {}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3001, "port to listen on")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false,
		"open the dashboard in a browser")

	rootCmd.AddCommand(serveCmd)
}
