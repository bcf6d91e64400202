package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnaura/aura/internal/assess"
	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/cognitive"
	"github.com/learnaura/aura/internal/intake"
	"github.com/learnaura/aura/internal/triangulate"
)

var assessCmd = &cobra.Command{
	Use:   "assess <batch.json>",
	Short: "Score an assessment batch and classify the subject",
	Long: "Reads a JSON assessment batch (per-rater Likert responses plus an optional\n" +
		"academic result), runs the scoring pipeline, appends the outcome to history,\n" +
		"and prints the classification.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read batch file: %w", err)
		}

		in, err := intake.Parse(raw)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := assess.NewService(st.EventRepo())
		rec, err := svc.Run(cmd.Context(), in)
		if err != nil {
			return err
		}

		printRecord(rec)
		return nil
	},
}

func printRecord(rec *assess.Record) {
	fmt.Printf("Subject %s  (run %s)\n\n", rec.SubjectID, rec.RunID)

	for _, rater := range []cognitive.Rater{cognitive.RaterStudent, cognitive.RaterParent} {
		scores, ok := rec.DomainScores[rater]
		if !ok {
			continue
		}
		fmt.Printf("%s domain scores:\n", rater)
		for _, d := range cognitive.AllDomains() {
			if v, ok := scores[d]; ok {
				fmt.Printf("  %-26s %.2f\n", cognitive.DomainDisplayName(d), v)
			}
		}
	}

	if rec.Academic != nil {
		fmt.Printf("\nAcademic: %.1f%%  tier %d  confidence %.2f\n",
			rec.Academic.Percentage, rec.Academic.Tier, rec.Academic.Confidence)
	}

	fmt.Println("\nCategory scores:")
	for _, c := range category.AllCategories() {
		fmt.Printf("  %-28s %3d\n", category.CategoryDisplayName(c), rec.CategoryScores[c])
	}

	cls := rec.Classification
	fmt.Printf("\nPrimary:    %s\n", category.CategoryDisplayName(cls.Primary))
	for i, c := range cls.Secondary {
		fmt.Printf("Secondary %d: %s\n", i+1, category.CategoryDisplayName(c))
	}
	fmt.Printf("Confidence: %.2f\n", cls.Confidence)

	if len(rec.Buckets) > 0 {
		fmt.Print("Buckets:    ")
		for i, b := range rec.Buckets {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(string(b))
		}
		fmt.Println()
	}

	if tri := rec.Triangulation; tri != nil {
		fmt.Printf("\nRater agreement: %.2f\n", tri.Score)
		for _, d := range cognitive.AllDomains() {
			cmp, ok := tri.PerDomain[d]
			if !ok {
				continue
			}
			marker := ""
			if cmp.Label == triangulate.LabelSignificant {
				marker = "  <-- follow up"
			}
			fmt.Printf("  %-26s %.2f vs %.2f  (%s)%s\n",
				cognitive.DomainDisplayName(d), cmp.A, cmp.B, cmp.Label, marker)
		}
	}

	if rec.Shifted {
		fmt.Println("\nPrimary category shifted since the previous assessment.")
	}
	if rec.Improved != nil {
		fmt.Printf("Academic change since previous assessment: %+.1f%%\n", *rec.Improved)
	}
}
