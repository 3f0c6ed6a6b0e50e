package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/cleandrop/internal/catalog"
	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/seed"
)

type productsOptions struct {
	search      string
	category    string
	productType string
	sort        string
}

// NewProductsCommand creates the products listing command.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Long: `List the seeded catalog with the same search, filters and sort
orders the storefront uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := catalog.ParseQueryParams(opts.search, opts.category, opts.productType, opts.sort)
			if err != nil {
				return err
			}

			store, err := loadStore()
			if err != nil {
				return err
			}

			return writeProducts(cmd.OutOrStdout(), rootOpts.Format, store.Query(params))
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive text in name or description")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "category filter (all|essential|botanical|premium|bundle|therapeutic)")
	cmd.Flags().StringVarP(&opts.productType, "type", "t", "", "type filter (all|unscented|scented|therapeutic)")
	cmd.Flags().StringVar(&opts.sort, "sort", "popularity", "sort order (popularity|rating|price-low|price-high)")

	return cmd
}

// NewProductCommand creates the single product lookup command.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}

			product, ok := store.ByID(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", catalog.ErrProductNotFound, args[0])
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), product)
			}
			return writeProductDetail(cmd.OutOrStdout(), product)
		},
	}
}

func loadStore() (*catalog.Store, error) {
	data, err := seed.Load(time.Now())
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(data.Products)
}

func writeProducts(w io.Writer, format string, products []models.Product) error {
	if format == "json" {
		return writeJSON(w, products)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tREVIEWS")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%s\t%.1f\t%d\n",
			p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Rating, p.ReviewCount)
	}
	fmt.Fprintf(tw, "\n%d product(s)\n", len(products))
	return tw.Flush()
}

func writeProductDetail(w io.Writer, p models.Product) error {
	fmt.Fprintf(w, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(w, "  %s\n", p.Description)
	fmt.Fprintf(w, "  category: %s  type: %s  sheets: %d\n", p.Category, p.Type, p.Sheets)
	if p.OriginalPrice != nil {
		fmt.Fprintf(w, "  price: $%s (was $%s)\n", p.Price.StringFixed(2), p.OriginalPrice.StringFixed(2))
	} else {
		fmt.Fprintf(w, "  price: $%s\n", p.Price.StringFixed(2))
	}
	fmt.Fprintf(w, "  rating: %.1f from %d reviews\n", p.Rating, p.ReviewCount)
	for _, f := range p.Features {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
