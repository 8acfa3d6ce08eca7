package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagProductsLimit int

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List product names known to the similarity table",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

func init() {
	productsCmd.Flags().IntVar(&flagProductsLimit, "limit", 0, "Maximum number of products to print (0 = all)")
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}

	products := store.Similarity.Products()
	if flagProductsLimit > 0 && flagProductsLimit < len(products) {
		products = products[:flagProductsLimit]
	}

	out := cmd.OutOrStdout()
	for _, p := range products {
		fmt.Fprintln(out, p)
	}
	return nil
}
