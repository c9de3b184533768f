package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cougcuts/internal/engine"
)

func newQuestionsCmd() *cobra.Command {
	var flags answerFlags

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions that apply to a hair type",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := flags.build()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, q := range engine.QuestionsFor(engine.HairType(flags.hairType), answers) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", q.ID, q.Type, q.Prompt)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&flags.hairType, "hair-type", "", "straight, wavy, curly or coily")
	cmd.Flags().StringArrayVar(&flags.pairs, "answer", nil, "quiz answer as key=value")
	cmd.Flags().StringVar(&flags.answersFile, "answers-file", "", "JSON file with the answer set")
	return cmd
}
