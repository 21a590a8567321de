package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/learnlab/internal/logging"
	"github.com/abhisek/learnlab/internal/session"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Study a course's flashcards",
	Long: "Starts a study session over a random deck from one course and reads\n" +
		"commands from stdin:\n\n" + studyHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectID, _ := cmd.Flags().GetString("subject")
		courseID, _ := cmd.Flags().GetString("course")
		count, _ := cmd.Flags().GetInt("count")

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.log.Sync()

		seed := d.cfg.Study.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}

		cat, err := d.catalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		subject, course, err := cat.Course(subjectID, courseID)
		if err != nil {
			return err
		}

		s := session.Start(subject, course, count, session.NewRand(seed))
		log := d.log.With("session_id", s.ID)
		log.Info("study session started",
			"subject", subject.ID, "course", course.ID,
			"requested", count, "deck", len(s.Deck))

		s = runStudy(cmd.InOrStdin(), cmd.OutOrStdout(), s, log)
		sum := session.BuildSummary(s)
		printSummary(cmd.OutOrStdout(), sum)
		log.Info("study session ended", "position", sum.Position, "progress", sum.ProgressPercent)
		return nil
	},
}

func init() {
	studyCmd.Flags().String("subject", "", "Subject ID (see 'learnlab catalog list')")
	studyCmd.Flags().String("course", "", "Course ID")
	studyCmd.Flags().Int("count", 0, "Number of cards (0 = as many as allowed, at most 15)")
	studyCmd.Flags().Uint64("seed", 0, "Deck shuffle seed (0 = random; overrides study.seed)")
	_ = studyCmd.MarkFlagRequired("subject")
	_ = studyCmd.MarkFlagRequired("course")
}

const studyHelp = `  n      next card
  p      previous card
  f      flip the card
  r      list recently viewed cards
  j K    jump to recently viewed card K
  q      quit`

// runStudy drives the session from line commands on in until q or EOF and
// returns the last state before quitting.
func runStudy(in io.Reader, out io.Writer, s session.Session, log *logging.Logger) session.Session {
	if len(s.Deck) == 0 {
		fmt.Fprintln(out, "This course has no cards.")
		return s
	}

	renderCard(out, s)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return s
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "n":
			if !s.CanNext() {
				fmt.Fprintln(out, "Last card.")
				continue
			}
			s = s.Next()
		case "p":
			if !s.CanPrev() {
				fmt.Fprintln(out, "First card.")
				continue
			}
			s = s.Prev()
		case "f":
			s = s.Flip()
		case "r":
			renderRecent(out, s)
			continue
		case "j":
			k, err := recentArg(fields, len(s.RecentlyViewed))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			s = s.JumpToRecent(k)
		case "q":
			return s
		default:
			fmt.Fprintln(out, studyHelp)
			continue
		}

		log.Debug("study action", "action", fields[0], "cursor", s.Cursor, "flipped", s.Flipped)
		renderCard(out, s)
	}
}

// recentArg parses the 1-based window entry of a "j K" command into a
// 0-based index.
func recentArg(fields []string, window int) (int, error) {
	if window == 0 {
		return 0, fmt.Errorf("no recently viewed cards")
	}
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: j K (1-%d)", window)
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil || k < 1 || k > window {
		return 0, fmt.Errorf("usage: j K (1-%d)", window)
	}
	return k - 1, nil
}

func renderCard(w io.Writer, s session.Session) {
	pos, total := s.Position()
	side := "Front"
	if s.Flipped {
		side = "Back"
	}
	fmt.Fprintf(w, "\n[%d/%d] %3.0f%%  %s\n", pos, total, s.ProgressPercent, side)
	fmt.Fprintf(w, "  %s\n", s.Face())
}

func renderRecent(w io.Writer, s session.Session) {
	if len(s.RecentlyViewed) == 0 {
		fmt.Fprintln(w, "No recently viewed cards.")
		return
	}
	for i, v := range s.RecentlyViewed {
		fmt.Fprintf(w, "  %d) %s\n", i+1, v.Front)
	}
}

func printSummary(w io.Writer, sum session.Summary) {
	fmt.Fprintf(w, "%s / %s: card %d of %d, %.0f%% progress",
		sum.SubjectName, sum.CourseName, sum.Position, sum.DeckSize, sum.ProgressPercent)
	if sum.Finished {
		fmt.Fprint(w, " (finished)")
	}
	fmt.Fprintln(w)
}
