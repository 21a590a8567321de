package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/learnlab/internal/assessment"
	"github.com/abhisek/learnlab/internal/profileapi"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Show the assessment for an age, or grade a learner's responses",
	Long: "Without responses, prints the question set for the learner's age.\n" +
		"With --answers and/or --answer, --rank and --rating, grades the responses and\n" +
		"prints the learning profile; --submit also stores the profile with the backend.\n" +
		"Flags override values from the responses file.\n\n" +
		"Responses file:\n" +
		`  {"answers": {"verbal1": "3,2,5,1,4", ...}, "ratings": {"followInstructions": 4, "solvePuzzles": 3}}` + "\n\n" +
		"Examples:\n" +
		`  learnlab assess --age 9 --rank 1=3 --rank 2=2 --answer logic2=Sock --rating solvePuzzles=4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		answersPath, _ := cmd.Flags().GetString("answers")
		answerFlags, _ := cmd.Flags().GetStringArray("answer")
		rankFlags, _ := cmd.Flags().GetStringArray("rank")
		ratingFlags, _ := cmd.Flags().GetStringArray("rating")
		submit, _ := cmd.Flags().GetBool("submit")
		out := cmd.OutOrStdout()

		if _, ok := assessment.BandForAge(age); !ok {
			return fmt.Errorf("%w: %d", assessment.ErrInvalidAgeBand, age)
		}

		hasFlags := len(answerFlags)+len(rankFlags)+len(ratingFlags) > 0
		if answersPath == "" && !hasFlags {
			if submit {
				return fmt.Errorf("--submit requires responses (--answers or --answer/--rank/--rating)")
			}
			printQuestions(out, assessment.SelectQuestionSet(age))
			return nil
		}

		resp := assessment.Responses{Answers: assessment.Answers{}}
		if answersPath != "" {
			raw, err := os.ReadFile(answersPath)
			if err != nil {
				return fmt.Errorf("read answers: %w", err)
			}
			if resp, err = assessment.ParseResponses(raw); err != nil {
				return err
			}
		}
		if err := applyResponseFlags(&resp, age, answerFlags, rankFlags, ratingFlags); err != nil {
			return err
		}

		profile := resp.Profile(age)
		printScores(out, assessment.ScoreAnswers(age, resp.Answers))
		printProfile(out, profile)

		if !submit {
			return nil
		}
		if !resp.Ratings.Complete() {
			return fmt.Errorf("both ratings (%s, %s) are required to submit",
				assessment.RatingFollowInstructions, assessment.RatingSolvePuzzles)
		}

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.log.Sync()

		client, creds := d.profiles()
		stored, err := client.Store(cmd.Context(), creds, profile)
		if err != nil {
			d.log.Error("profile submission failed", "error", err, "retryable", profileapi.IsRetryable(err))
			return profileError("submit profile", err)
		}
		d.log.Info("profile stored", "age", stored.Age)
		fmt.Fprintln(out, "\nProfile saved.")
		return nil
	},
}

func init() {
	assessCmd.Flags().Int("age", 0, "Learner age (6-18)")
	assessCmd.Flags().String("answers", "", "Path to a JSON responses file")
	assessCmd.Flags().StringArray("answer", nil, "Answer a question, as ID=VALUE (repeatable)")
	assessCmd.Flags().StringArray("rank", nil, "Rank a step of the ordering question, as STEP=RANK with STEP from 1 (repeatable)")
	assessCmd.Flags().StringArray("rating", nil, "Self-rating, as followInstructions=N or solvePuzzles=N with N in 1-5 (repeatable)")
	assessCmd.Flags().Bool("submit", false, "Store the graded profile with the backend")
	_ = assessCmd.MarkFlagRequired("age")
}

// applyResponseFlags layers --answer, --rank and --rating values over resp.
// Ranks fill one slot of the ordering question each.
func applyResponseFlags(resp *assessment.Responses, age int, answers, ranks, ratings []string) error {
	if resp.Answers == nil {
		resp.Answers = assessment.Answers{}
	}

	for _, a := range answers {
		id, value, err := splitAssignment("answer", a)
		if err != nil {
			return err
		}
		if assessment.ExpectedAnswer(age, id) == "" {
			return fmt.Errorf("--answer: unknown question %q", id)
		}
		resp.Answers[id] = value
	}

	if len(ranks) > 0 {
		slots := orderingSlots(age)
		for _, r := range ranks {
			step, value, err := splitAssignment("rank", r)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(step)
			if err != nil || n < 1 || n > slots {
				return fmt.Errorf("--rank: step must be 1-%d, got %q", slots, step)
			}
			current := resp.Answers.Get(assessment.QuestionVerbal1)
			resp.Answers[assessment.QuestionVerbal1] = assessment.SetOrderedSlot(current, slots, n-1, value)
		}
	}

	for _, r := range ratings {
		key, value, err := splitAssignment("rating", r)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("--rating: %s is not a number: %q", key, value)
		}
		if err := resp.Ratings.Set(key, n); err != nil {
			return fmt.Errorf("--rating: %w", err)
		}
	}
	return nil
}

// orderingSlots is the number of steps in the ordering question for age.
func orderingSlots(age int) int {
	for _, q := range assessment.SelectQuestionSet(age) {
		if q.ID == assessment.QuestionVerbal1 {
			return len(q.Options)
		}
	}
	return assessment.OrderingSlots
}

func splitAssignment(flag, s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("--%s: expected KEY=VALUE, got %q", flag, s)
	}
	return key, value, nil
}

func printQuestions(w io.Writer, questions []assessment.Question) {
	for i, q := range questions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s] %s\n", q.ID, q.Prompt)
		if q.Scaffolding != "" {
			fmt.Fprintln(w, indent(q.Scaffolding, "    "))
		}
		for j, opt := range q.Options {
			fmt.Fprintf(w, "    %d) %s\n", j+1, opt)
		}
		if q.Hint != "" {
			fmt.Fprintf(w, "    Hint: %s\n", q.Hint)
		}
	}
}

func printScores(w io.Writer, scores []assessment.QuestionScore) {
	fmt.Fprintf(w, "%-11s  %-15s  %5s  %s\n", "Question", "Type", "Score", "Answer")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, s := range scores {
		answer := s.Answer
		if answer == "" {
			answer = "(none)"
		}
		fmt.Fprintf(w, "%-11s  %-15s  %5.1f  %s\n", s.QuestionID, s.Type, s.Score, answer)
	}
}

func printProfile(w io.Writer, p assessment.LearningProfile) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Age:              %d\n", p.Age)
	fmt.Fprintf(w, "Verbal score:     %.1f / %.0f\n", p.VerbalScore, assessment.MaxVerbalScore)
	fmt.Fprintf(w, "Non-verbal score: %.1f / %.0f\n", p.NonVerbalScore, assessment.MaxNonVerbalScore)
	fmt.Fprintf(w, "Self-assessment:  %d / %d\n", p.SelfAssessment, 2*assessment.MaxRating)
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
