package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Search for papers matching the given terms",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			query, err := buildQuery(cmd, args)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")

			result, err := c.app.Search(cmd.Context(), query, limit)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringP("field", "f", string(domain.FieldAll), "Field to match terms against (ti, au, abs, co, jr, cat, rn, doi, all)")
	cmd.Flags().String("sort", "", "Sort criterion (relevance, lastUpdatedDate, submittedDate)")
	cmd.Flags().String("order", "", "Sort direction (ascending, descending)")
	cmd.Flags().Int("start", 0, "Index of the first result")
	cmd.Flags().Int("max", domain.DefaultMaxResults, "Number of results per page")
	cmd.Flags().Int("limit", 0, "Total number of results to collect across pages (0 for one page)")
	cmd.Flags().String("from", "", "Only papers submitted on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Only papers submitted on or before this date (YYYY-MM-DD)")
	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}

// buildQuery assembles the search query from the command flags.
func buildQuery(cmd *cobra.Command, args []string) (domain.Query, error) {
	field, _ := cmd.Flags().GetString("field")

	var expr domain.Expr = domain.NewTerm(domain.Field(field), strings.Join(args, " "))

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if (from == "") != (to == "") {
		return domain.Query{}, zerr.New("--from and --to must be given together")
	}
	if from != "" {
		r, err := domain.RangeFromDate(domain.RangeSubmitted, from, to)
		if err != nil {
			return domain.Query{}, zerr.Wrap(err, "invalid date range")
		}
		expr = domain.And(expr, r)
	}

	query := domain.NewQuery().WithSearch(expr)

	if start, _ := cmd.Flags().GetInt("start"); start > 0 {
		query = query.WithStart(start)
	}
	if maxResults, _ := cmd.Flags().GetInt("max"); maxResults > 0 {
		query = query.WithMaxResults(maxResults)
	}
	if sort, _ := cmd.Flags().GetString("sort"); sort != "" {
		query = query.WithSortBy(domain.SortBy(sort))
	}
	if order, _ := cmd.Flags().GetString("order"); order != "" {
		query = query.WithSortOrder(domain.SortOrder(order))
	}

	return query, nil
}
