package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"PrecisionWorks/internal/catalog"
)

var (
	term     string
	category string
	sortBy   string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products filtered by search term and category",
	Example: `  catalogctl products --q steel
  catalogctl products --category aerospace --sort materials`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

func init() {
	productsCmd.Flags().StringVar(&term, "q", "", "search name, description, materials and applications")
	productsCmd.Flags().StringVar(&category, "category", string(catalog.CategoryAll), "category filter")
	productsCmd.Flags().StringVar(&sortBy, "sort", string(catalog.SortByName), "sort key: name, category or materials")
}

func runProducts(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	all, err := newReader().GetAll(ctx)
	if err != nil {
		if catalog.IsRetryable(err) {
			return fmt.Errorf("failed to load products, please try again: %w", err)
		}
		return err
	}

	view := catalog.ViewStateFromParams(term, category, sortBy).Render(all)
	printView(cmd.OutOrStdout(), view)
	return nil
}

func printView(out io.Writer, v catalog.View) {
	for _, f := range v.ActiveFilters {
		fmt.Fprintln(out, f.Label)
	}
	fmt.Fprintf(out, "Showing %d of %d products\n\n", v.Shown, v.Total)

	switch v.EmptyReason {
	case catalog.EmptyNoMatch:
		fmt.Fprintln(out, "No products match your current filters.")
		return
	case catalog.EmptyCatalogEmpty:
		fmt.Fprintln(out, "The product catalog is empty.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tMATERIALS")
	for _, p := range v.Products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, strings.Join(p.Materials, ", "))
	}
	_ = tw.Flush()
}

func runProduct(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	p, err := newReader().GetByID(ctx, args[0])
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("product %q not found", args[0])
	}
	if err != nil {
		return err
	}

	printProduct(cmd.OutOrStdout(), p)
	return nil
}

func printProduct(out io.Writer, p catalog.Product) {
	fmt.Fprintf(out, "%s  [%s]\n%s\n\n", p.Name, p.Category.Label(), p.Description)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Materials\t%s\n", strings.Join(p.Materials, ", "))
	fmt.Fprintf(tw, "Applications\t%s\n", strings.Join(p.Applications, ", "))
	fmt.Fprintf(tw, "Features\t%s\n", strings.Join(p.Features, ", "))

	keys := make([]string, 0, len(p.Specifications))
	for k := range p.Specifications {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, p.Specifications[k])
	}
	_ = tw.Flush()
}
