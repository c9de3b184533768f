package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cougcuts/internal/engine"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags    answerFlags
		budget   string
		goals    []string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the generated routine as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := flags.build()
			if err != nil {
				return err
			}

			hairType, _ := answers.Value(engine.QuestionHairType)
			if hairType == "" {
				return fmt.Errorf("hair type is required: pass --hair-type or a hair_type answer")
			}
			if validate {
				if err := engine.ValidateAnswers(answers); err != nil {
					return err
				}
			}

			tier := engine.Tier(budget)
			if budget == "" {
				tier = engine.TierMid
				if raw, ok := answers.Value(engine.QuestionBudget); ok {
					tier = engine.Tier(raw)
				}
			}
			if _, ok := engine.ParseTier(string(tier)); !ok {
				return fmt.Errorf("unknown budget %q: want low, mid or premium", tier)
			}
			if len(goals) == 0 {
				if a, ok := answers[engine.QuestionHairGoals]; ok && a.IsMulti() {
					goals = a.Values()
				}
			}

			routine := engine.Generate(engine.Input{
				HairType:    engine.HairType(hairType),
				HairGoals:   goals,
				QuizAnswers: answers,
				Budget:      tier,
			})
			logger.Debug("routine generated",
				zap.String("profile_id", routine.ProfileID),
				zap.Int("products", len(routine.Products)))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(routine)
		},
	}

	cmd.Flags().StringVar(&flags.hairType, "hair-type", "", "straight, wavy, curly or coily")
	cmd.Flags().StringArrayVar(&flags.pairs, "answer", nil, "quiz answer as key=value, repeat a key for multi answers")
	cmd.Flags().StringVar(&flags.answersFile, "answers-file", "", "JSON file with the answer set")
	cmd.Flags().StringVar(&budget, "budget", "", "low, mid or premium (default: budget answer, then mid)")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "hair goal, repeatable (default: hair_goals answer)")
	cmd.Flags().BoolVar(&validate, "validate", false, "reject answers the question bank does not allow")
	return cmd
}
