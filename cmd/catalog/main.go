// Command catalog manages the phrase catalog database offline: bulk imports
// from JSON, CSV or Excel files and quick listings.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/linguacards/internal/config"
	"github.com/vytor/linguacards/internal/db"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/repository"
	"github.com/vytor/linguacards/internal/repository/sqlite"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type options struct {
	dbPath   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{}

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Manage the LinguaCards phrase catalog",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefault(logger.New(
				logger.WithLevel(logger.ParseLevel(opts.logLevel)),
				logger.WithOutput(cmd.ErrOrStderr()),
			))
		},
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", cfg.DBPath, "catalog database path")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(newImportCmd(opts), newLanguagesCmd(opts), newPhrasesCmd(opts))
	return root
}

type repos struct {
	db        *db.DB
	languages repository.LanguageRepository
	phrases   repository.PhraseRepository
}

func openRepos(opts *options) (*repos, error) {
	database, err := db.Open(opts.dbPath)
	if err != nil {
		return nil, err
	}
	return &repos{
		db:        database,
		languages: sqlite.NewLanguageRepository(database.DB),
		phrases:   sqlite.NewPhraseRepository(database.DB),
	}, nil
}

func (r *repos) Close() error {
	return r.db.Close()
}
