package cmd

import (
	"errors"
	"fmt"
	"strings"

	"shopperSpectrum/business/recommendation"
	"shopperSpectrum/domain"

	"github.com/spf13/cobra"
)

var flagSimilarTop int

var similarCmd = &cobra.Command{
	Use:   "similar <product name>",
	Short: "List the products most similar to a product",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSimilar,
}

func init() {
	similarCmd.Flags().IntVarP(&flagSimilarTop, "top", "n", 0, "Number of products to show (default from DEFAULT_TOP_N)")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return errors.New("please enter a product name")
	}
	if flagSimilarTop < 0 {
		return fmt.Errorf("--top must not be negative")
	}

	store, cfg, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}

	svc := recommendation.NewService(store.Similarity, cfg.Artifacts.DefaultTopN)
	recs, err := svc.Recommend(cmd.Context(), name, flagSimilarTop)
	if errors.Is(err, domain.ErrProductNotFound) {
		return fmt.Errorf("product '%s' not found", name)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Top %d similar products to %s:\n", len(recs), name)
	for _, r := range recs {
		fmt.Fprintf(out, "%2d. %s (%.4f)\n", r.Rank, r.ProductName, r.Score)
	}
	return nil
}
