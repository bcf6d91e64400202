package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/classify"
	"github.com/learnaura/aura/internal/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies <subject-id>",
	Short: "Show teaching strategies for a subject's current classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.EventRepo().LatestClassification(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Println("No classification recorded for this subject; assess first.")
			return nil
		}

		cls := classify.Classification{Primary: category.Category(rec.Primary)}
		for _, s := range rec.Secondary {
			cls.Secondary = append(cls.Secondary, category.Category(s))
		}

		fmt.Printf("Strategies for %s (primary: %s)\n",
			args[0], category.CategoryDisplayName(cls.Primary))
		for _, strat := range strategy.ForClassification(cls) {
			fmt.Printf("\n[%s] %s\n", strat.Category, strat.Label)
			fmt.Printf("  %s\n", strat.Description)
			for _, a := range strat.Activities {
				fmt.Printf("  - %s\n", a)
			}
		}
		return nil
	},
}
