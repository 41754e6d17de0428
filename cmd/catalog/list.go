package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/services"
)

func newLanguagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List catalog languages with their phrase counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(opts)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer r.Close()

			languages, err := services.NewCatalogService(r.languages, r.phrases).ListLanguages(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tPHRASES")
			for _, l := range languages {
				fmt.Fprintf(tw, "%s\t%s %s\t%d\n", l.Code, l.Flag, l.Name, l.PhraseCount)
			}
			return tw.Flush()
		},
	}
}

func newPhrasesCmd(opts *options) *cobra.Command {
	var (
		difficulty string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "phrases <language-code>",
		Short: "List the phrases of one language in study order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(opts)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer r.Close()

			phrases, err := r.phrases.List(cmd.Context(), models.PhraseFilter{
				LanguageCode: args[0],
				Difficulty:   models.Difficulty(difficulty),
				Limit:        limit,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDIFFICULTY\tENGLISH\tTRANSLATION")
			for _, p := range phrases {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Difficulty, p.English, p.Translation)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only phrases of this difficulty (easy, medium, hard)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of phrases, 0 for all")
	return cmd
}
