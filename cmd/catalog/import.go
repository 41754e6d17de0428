package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"github.com/vytor/linguacards/internal/catalog"
	"github.com/vytor/linguacards/internal/worker"
)

func newImportCmd(opts *options) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import languages and phrases from .json, .csv or .xlsx files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(opts)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer r.Close()

			importer := catalog.NewImporter(r.languages, r.phrases)
			out := cmd.OutOrStdout()

			var mu sync.Mutex
			report := func(path string, result *catalog.ImportResult, err error) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					fmt.Fprintf(out, "%s: failed: %v\n", path, err)
					return
				}
				fmt.Fprintf(out, "%s: languages: %d\n", path, result.Languages)
				fmt.Fprintf(out, "%s: processed: %d created: %d updated: %d skipped: %d\n",
					path, result.TotalProcessed, result.Created, result.Updated, result.Skipped)
				for _, msg := range result.Errors {
					fmt.Fprintf(out, "  skipped: %s\n", msg)
				}
			}

			pool := worker.NewPool(workers, len(args))
			pool.Start(cmd.Context())
			for _, path := range args {
				pool.Submit(&worker.ImportFileJob{Importer: importer, Path: path, Done: report})
			}
			pool.Wait()

			if n := pool.Failed(); n > 0 {
				return fmt.Errorf("%d of %d files failed to import", n, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 2, "files imported in parallel")
	return cmd
}
