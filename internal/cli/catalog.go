package cli

import (
	"math"

	"github.com/spf13/cobra"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
	Category string
	MaxPrice float64
	Search   string
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List or filter the product catalog",
		Long: `List the product catalog, optionally filtered by category, maximum
price, and a case-insensitive name search. All filters combine.

Example:
  storefront catalog
  storefront catalog --category Hoodies --max-price 100 --search cyber`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(opts.RootOptions, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			products := s.Catalog().Filter(opts.Category, opts.MaxPrice, opts.Search)
			return writeProducts(cmd.OutOrStdout(), opts.Format, products)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "exact category match")
	cmd.Flags().Float64Var(&opts.MaxPrice, "max-price", math.Inf(1), "maximum price")
	cmd.Flags().StringVar(&opts.Search, "search", "", "name search text")

	return cmd
}
