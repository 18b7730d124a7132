package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/recording"
)

var reportLimit int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize recorded drill results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbPath == "" {
			return fmt.Errorf("no result database; pass --db or set KATA_DB")
		}

		reader := recording.NewSQLiteReader(dbPath)
		defer reader.Close()

		reader.MapTable(drill.ResultTable, drill.Result{})

		rows, total, err := reader.Query(
			cmd.Context(), drill.ResultTable,
			recording.QueryParams{OrderBy: "RunAt DESC", Limit: reportLimit})
		if err != nil {
			return err
		}

		type tally struct{ runs, passed int }
		byTopic := make(map[string]*tally)

		for _, row := range rows {
			r := row.(drill.Result)

			t, ok := byTopic[r.Topic]
			if !ok {
				t = &tally{}
				byTopic[r.Topic] = t
			}

			t.runs++
			if r.Passed {
				t.passed++
			}
		}

		topics := make([]string, 0, len(byTopic))
		for topic := range byTopic {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tRUNS\tPASSED")
		for _, topic := range topics {
			t := byTopic[topic]
			fmt.Fprintf(w, "%s\t%d\t%d\n", topic, t.runs, t.passed)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d result(s) recorded in total, %d summarized\n",
			total, len(rows))

		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 500,
		"number of most recent results to summarize")

	rootCmd.AddCommand(reportCmd)
}
