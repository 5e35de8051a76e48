package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	"github.com/spf13/cobra"
)

var showCards bool

var oddsCMD = &cobra.Command{
	Use:   "odds",
	Short: "print draw probabilities for the configured catalog and weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := cfg.BuildCatalog()
		if err != nil {
			return err
		}
		weights, err := cfg.DrawWeights()
		if err != nil {
			return err
		}
		// Odds never records, so the engine gets no store.
		engine, err := draw.NewEngine(cat, weights, nil)
		if err != nil {
			return err
		}
		odds := engine.Odds()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RARITY\tCARDS\tWEIGHT\tCHANCE")
		for _, r := range odds.Rarities {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.2f%%\n", r.Name, r.Cards, r.Weight, r.Probability*100)
		}
		if showCards {
			fmt.Fprintln(w, "\nCARD\tRARITY\tWEIGHT\tCHANCE")
			for _, c := range odds.Cards {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.3f%%\n", c.Card.Name, c.Card.Rarity, c.Weight, c.Probability*100)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

		color.New(color.Bold).Fprintf(cmd.OutOrStdout(), "\ntotal weight %d over %d cards\n", odds.TotalWeight, len(odds.Cards))
		return nil
	},
}

func init() {
	oddsCMD.Flags().BoolVar(&showCards, "cards", false, "also list every card")
	rootCmd.AddCommand(oddsCMD)
}
