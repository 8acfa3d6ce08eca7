package cmd

import (
	"fmt"

	"shopperSpectrum/business/segmentation"

	"github.com/spf13/cobra"
)

var (
	flagRecency   float64
	flagFrequency float64
	flagMonetary  float64
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Predict the customer segment for recency, frequency and monetary values",
	Args:  cobra.NoArgs,
	RunE:  runSegment,
}

func init() {
	segmentCmd.Flags().Float64Var(&flagRecency, "recency", 30, "Days since last purchase (0-1000)")
	segmentCmd.Flags().Float64Var(&flagFrequency, "frequency", 5, "Number of purchases (0-1000)")
	segmentCmd.Flags().Float64Var(&flagMonetary, "monetary", 100, "Total spend (0-100000)")
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	if err := checkRange("recency", flagRecency, 1000); err != nil {
		return err
	}
	if err := checkRange("frequency", flagFrequency, 1000); err != nil {
		return err
	}
	if err := checkRange("monetary", flagMonetary, 100000); err != nil {
		return err
	}

	store, _, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}

	svc := segmentation.NewService(store.Scaler, store.Model)
	segment, err := svc.PredictCluster(cmd.Context(), flagRecency, flagFrequency, flagMonetary)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Predicted Customer Segment: %s\n", segment)
	return nil
}

func checkRange(name string, v, limit float64) error {
	if v < 0 || v > limit {
		return fmt.Errorf("--%s must be between 0 and %g", name, limit)
	}
	return nil
}
