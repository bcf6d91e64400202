package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/cohort"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cohort-level category and group statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		latest, err := repo.LatestClassificationsBySubject(ctx)
		if err != nil {
			return err
		}
		if len(latest) == 0 {
			fmt.Println("No classifications recorded yet.")
			return nil
		}

		scoreSets := make([]category.ScoreSet, 0, len(latest))
		for _, rec := range latest {
			set := make(category.ScoreSet, len(rec.CategoryScores))
			for name, score := range rec.CategoryScores {
				set[category.Category(name)] = score
			}
			scoreSets = append(scoreSets, set)
		}

		fmt.Printf("Category score distribution (%d subjects):\n\n", len(scoreSets))
		fmt.Printf("%-28s %5s %5s %6s %6s\n", "Category", "Min", "Max", "Mean", "Median")
		dist := cohort.Distribution(scoreSets)
		for _, c := range category.AllCategories() {
			s := dist[c]
			fmt.Printf("%-28s %5d %5d %6.1f %6.1f\n",
				category.CategoryDisplayName(c), s.Min, s.Max, s.Mean, s.Median)
		}

		groupCounts := make(map[cohort.Group]int)
		graded := 0
		for _, rec := range latest {
			acad, err := repo.LatestAcademic(ctx, rec.SubjectID)
			if err != nil {
				return err
			}
			if acad == nil {
				continue
			}
			groupCounts[cohort.GroupFor(acad.Percentage)]++
			graded++
		}

		if graded > 0 {
			fmt.Printf("\nTeaching groups (%d subjects with academic results):\n", graded)
			for _, g := range []cohort.Group{cohort.GroupSupport, cohort.GroupCore, cohort.GroupAdvanced} {
				fmt.Printf("  %-10s %d\n", cohort.GroupDisplayName(g), groupCounts[g])
			}
		}
		return nil
	},
}
