package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"shelfspot/internal/client"
	"shelfspot/internal/search"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type app struct {
	catalog *client.Catalog
	filter  *search.Filter
	out     io.Writer
	errOut  io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse and manage the product catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newDeleteCmd(a),
		newSearchCmd(a),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.catalog.Load(cmd.Context()); err != nil {
				return err
			}
			return printProducts(a.out, a.catalog.Products())
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var in struct {
		name, price, description, imageURL, displayHint string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			price, err := decimal.NewFromString(strings.TrimSpace(in.price))
			if err != nil {
				return fmt.Errorf("price must be a number")
			}

			p, err := a.catalog.Add(cmd.Context(), client.NewProduct{
				Name:        in.name,
				Price:       price,
				Description: in.description,
				ImageURL:    in.imageURL,
				DisplayHint: in.displayHint,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.name, "name", "", "product name")
	f.StringVar(&in.price, "price", "", "price, for example 49.99")
	f.StringVar(&in.description, "description", "", "product description")
	f.StringVar(&in.imageURL, "image-url", "", "image URL, a placeholder is used when empty")
	f.StringVar(&in.displayHint, "display-hint", "", "short hint, derived from the name when empty")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.catalog.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted %s\n", args[0])
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by meaning, falling back to keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.catalog.Load(cmd.Context()); err != nil {
				return err
			}

			res := a.filter.Search(cmd.Context(), strings.Join(args, " "), a.catalog.Products())
			if res.Degraded {
				fmt.Fprintln(a.errOut, res.Notice)
			}
			return printProducts(a.out, res.Products)
		},
	}
}

func printProducts(w io.Writer, items []client.Product) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no products found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tHINT")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.DisplayHint)
	}
	return tw.Flush()
}
