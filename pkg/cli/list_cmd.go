package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"deltashare/internal/domain"
)

func newListCmd(catalogPath, format *string) *cobra.Command {
	var recipient string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entities visible to a recipient",
	}
	listCmd.PersistentFlags().StringVarP(&recipient, "recipient", "r", "", "recipient identity to list as (default: anonymous)")

	listCmd.AddCommand(&cobra.Command{
		Use:   "shares",
		Short: "List shares visible to the recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := openCatalog(*catalogPath, *format)
			if err != nil {
				return err
			}
			return walkPages(func(p domain.Pagination) (pager, error) {
				page, err := catalog.ListShares(cmd.Context(), recipientID(recipient), p)
				if err != nil {
					return pager{}, err
				}
				for _, s := range page.Items() {
					fmt.Fprintln(cmd.OutOrStdout(), s.Name())
				}
				return pager{next: page.NextPageToken(), last: page.IsLastPage()}, nil
			})
		},
	})

	listCmd.AddCommand(&cobra.Command{
		Use:   "schemas SHARE",
		Short: "List schemas of a share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(*catalogPath, *format)
			if err != nil {
				return err
			}
			return walkPages(func(p domain.Pagination) (pager, error) {
				page, err := catalog.ListSchemas(cmd.Context(), args[0], recipientID(recipient), p)
				if err != nil {
					return pager{}, err
				}
				for _, s := range page.Items() {
					fmt.Fprintln(cmd.OutOrStdout(), s.Name())
				}
				return pager{next: page.NextPageToken(), last: page.IsLastPage()}, nil
			})
		},
	})

	listCmd.AddCommand(&cobra.Command{
		Use:   "tables SHARE [SCHEMA]",
		Short: "List tables of a share, optionally restricted to one schema",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(*catalogPath, *format)
			if err != nil {
				return err
			}
			list := func(ctx context.Context, p domain.Pagination) (domain.Page[domain.Table], error) {
				if len(args) == 2 {
					return catalog.ListTablesInSchema(ctx, args[0], args[1], recipientID(recipient), p)
				}
				return catalog.ListTablesInShare(ctx, args[0], recipientID(recipient), p)
			}
			return walkPages(func(p domain.Pagination) (pager, error) {
				page, err := list(cmd.Context(), p)
				if err != nil {
					return pager{}, err
				}
				for _, t := range page.Items() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\n", t.SchemaName(), t.Name())
				}
				return pager{next: page.NextPageToken(), last: page.IsLastPage()}, nil
			})
		},
	})

	return listCmd
}

func recipientID(name string) domain.RecipientID {
	if name == "" {
		return domain.Anonymous()
	}
	return domain.Known(name)
}

type pager struct {
	next string
	last bool
}

// walkPages drives the pagination protocol to exhaustion, feeding each page's
// continuation token into the next request.
func walkPages(fetch func(domain.Pagination) (pager, error)) error {
	p := domain.NewPagination(nil, "")
	for {
		res, err := fetch(p)
		if err != nil {
			return err
		}
		if res.last {
			return nil
		}
		p = domain.NewPagination(nil, res.next)
	}
}
