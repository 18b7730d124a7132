package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/recording"
)

var (
	runTopic string
	runAll   bool
	record   bool
	planPath string
)

var runCmd = &cobra.Command{
	Use:   "run [drill]",
	Short: "Run a drill, a topic, a plan file, or everything.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, recorder := buildRunner()
		if recorder != nil {
			defer recorder.Close()
		}

		results, err := selectAndRun(runner, args)
		if err != nil {
			return err
		}

		return summarize(results)
	},
}

func buildRunner() (*drill.Runner, recording.Recorder) {
	builder := drill.RunnerBuilder{}.
		WithRegistry(registry).
		WithLogger(logger).
		WithOutput(os.Stdout)

	var recorder recording.Recorder
	if record {
		recorder = recording.NewSQLiteRecorder(dbPath)
		builder = builder.WithRecorder(recorder)
	}

	return builder.Build(), recorder
}

func selectAndRun(
	runner *drill.Runner,
	args []string,
) ([]drill.Result, error) {
	switch {
	case planPath != "":
		p, err := drill.LoadPlan(planPath)
		if err != nil {
			return nil, err
		}
		return runner.RunPlan(p)

	case runAll:
		return runner.RunAll(), nil

	case runTopic != "":
		return runner.RunTopic(runTopic)

	case len(args) == 1:
		result, err := runner.RunDrill(args[0])
		if err != nil {
			return nil, err
		}
		return []drill.Result{result}, nil

	default:
		return nil, fmt.Errorf("name a drill, or pass --topic, --plan, or --all")
	}
}

func summarize(results []drill.Result) error {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}

	fmt.Printf("\n%d/%d drills passed\n", passed, len(results))

	if passed < len(results) {
		return fmt.Errorf("%d drill(s) failed", len(results)-passed)
	}

	return nil
}

func init() {
	runCmd.Flags().StringVar(&runTopic, "topic", "", "run every drill of a topic")
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every registered drill")
	runCmd.Flags().BoolVar(&record, "record", false,
		"record results to the SQLite database")
	runCmd.Flags().StringVar(&planPath, "plan", "", "run a YAML plan file")

	rootCmd.AddCommand(runCmd)
}
