package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barkoapp/barko/internal/llm"
	"github.com/barkoapp/barko/internal/plan"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated learning plan (no database)",
	Long: `Generate and print a learning plan for a set of onboarding answers.

This is a stateless developer tool — no database, no profile, no progress.
Useful for evaluating plan quality across locales and goals. When no LLM
provider is configured the deterministic template plan is printed.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("lang", "en", "Plan language: en, fr, es, de")
	previewCmd.Flags().String("income", "30k_60k", "Income range answer")
	previewCmd.Flags().String("goals", "", "Financial goals answer (free text)")
	previewCmd.Flags().Bool("template", false, "Skip the AI path and print the template plan")
}

func runPreview(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")
	income, _ := cmd.Flags().GetString("income")
	goals, _ := cmd.Flags().GetString("goals")
	templateOnly, _ := cmd.Flags().GetBool("template")

	answers := plan.AnswerSet{
		Language:       lang,
		IncomeRange:    income,
		FinancialGoals: goals,
	}

	ctx := context.Background()
	var lp *plan.LearningPlan
	if templateOnly {
		lp = plan.Fallback(lang, income, goals)
	} else {
		// No EventRepo, so request logging is skipped.
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen := plan.NewGenerator(provider, plan.DefaultConfig())
		lp, err = gen.Generate(ctx, answers)
		if err != nil {
			fmt.Printf("(AI path failed, showing template plan: %v)\n\n", err)
		}
	}

	fmt.Println(lp.PersonalizedMessage)
	fmt.Printf("Estimated completion: %d weeks\n\n", lp.EstimatedCompletionWeeks)
	for i, lesson := range lp.Lessons {
		fmt.Printf("── Lesson %d/%d ── %s [%s]\n", i+1, len(lp.Lessons), lesson.Title, lesson.Category)
		fmt.Printf("   Difficulty %d · %d min\n", lesson.Difficulty, lesson.EstimatedMinutes)
		fmt.Printf("   %s\n", lesson.Description)
		if lesson.Why != "" {
			fmt.Printf("   Why: %s\n", lesson.Why)
		}
		fmt.Println()
	}
	if len(lp.RecommendedPath) > 0 {
		fmt.Printf("Recommended path: %s\n", strings.Join(lp.RecommendedPath, " → "))
	}
	return nil
}
