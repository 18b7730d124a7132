package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [topic]",
	Short: "List topics, or the drills of one topic.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, topic := range registry.Topics() {
				fmt.Printf("%s (%d drills)\n",
					topic, len(registry.ByTopic(topic)))
			}
			return nil
		}

		drills := registry.ByTopic(args[0])
		if len(drills) == 0 {
			return fmt.Errorf("no drills under topic %q", args[0])
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, d := range drills {
			fmt.Fprintf(w, "%s\t%s\t%dm\t%s\n",
				d.Name, d.Difficulty, d.Minutes, d.Summary)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
