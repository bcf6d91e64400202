package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <subject-id>",
	Short: "Show a subject's classification and academic history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectID := args[0]
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		classifications, err := repo.ListClassifications(ctx, subjectID, limit)
		if err != nil {
			return err
		}
		if len(classifications) == 0 {
			fmt.Println("No classifications recorded for this subject.")
			return nil
		}

		fmt.Printf("Classification history for %s (newest first):\n\n", subjectID)
		for _, rec := range classifications {
			line := fmt.Sprintf("%s  %-26s conf %.2f",
				rec.Timestamp.Format(time.RFC3339), rec.Primary, rec.Confidence)
			if len(rec.Secondary) > 0 {
				line += "  secondary: " + strings.Join(rec.Secondary, ", ")
			}
			if rec.Shifted {
				line += "  [shifted]"
			}
			fmt.Println(line)
		}

		academics, err := repo.ListAcademic(ctx, subjectID, limit)
		if err != nil {
			return err
		}
		if len(academics) == 0 {
			return nil
		}

		fmt.Printf("\nAcademic history:\n\n")
		for i, rec := range academics {
			line := fmt.Sprintf("%s  %d/%d  %.1f%%  tier %d",
				rec.Timestamp.Format(time.RFC3339), rec.Correct, rec.Total, rec.Percentage, rec.Tier)
			if i+1 < len(academics) {
				line += fmt.Sprintf("  (%+.1f%% vs previous)", rec.Percentage-academics[i+1].Percentage)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum records to show (0 = all)")
}
