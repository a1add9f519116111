package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vimldn/invis"
	"github.com/vimldn/invis/models"
)

func newArticlesCmd(a *app) *cobra.Command {
	var published, asJSON bool

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Print the normalized article collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := a.newLoader(cmd.Context())
			if err != nil {
				return err
			}

			variant := invis.VariantArticle
			if published {
				variant = invis.VariantListing
			}
			articles := loader.Load(cmd.Context(), variant)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), articles)
			}
			return writeArticleTable(cmd.OutOrStdout(), articles)
		},
	}

	cmd.Flags().BoolVar(&published, "published", false, "only articles whose publish date has passed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newArticleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "article <slug>",
		Short: "Print one article with its banner split and link sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := a.newLoader(cmd.Context())
			if err != nil {
				return err
			}

			page := invis.NewArticlePage(loader, invis.DefaultViewOptions())
			view, err := page.Navigate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), view)
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeArticleTable(w io.Writer, articles []models.Article) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tDATE\tCATEGORY\tSLUG\tTITLE")
	for _, a := range articles {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			a.Index, a.PublishDate.Format("2006-01-02"), a.Category, a.Slug, a.Title)
	}
	return tw.Flush()
}
