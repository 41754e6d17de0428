package worker_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/linguacards/internal/catalog"
	"github.com/vytor/linguacards/internal/repository/sqlite"
	"github.com/vytor/linguacards/internal/testutil"
	"github.com/vytor/linguacards/internal/worker"
)

type funcJob struct {
	name string
	run  func(context.Context) error
}

func (j funcJob) Name() string                  { return j.name }
func (j funcJob) Run(ctx context.Context) error { return j.run(ctx) }

func TestPool_WaitRunsEveryQueuedJob(t *testing.T) {
	p := worker.NewPool(3, 10)
	p.Start(context.Background())

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		p.Submit(funcJob{name: "count", run: func(context.Context) error {
			ran.Add(1)
			return nil
		}})
	}
	p.Wait()

	assert.Equal(t, int32(10), ran.Load())
	assert.Equal(t, 0, p.Failed())
}

func TestPool_CountsFailures(t *testing.T) {
	p := worker.NewPool(2, 4)
	p.Start(context.Background())

	p.Submit(funcJob{name: "ok", run: func(context.Context) error { return nil }})
	p.Submit(funcJob{name: "bad", run: func(context.Context) error { return errors.New("boom") }})
	p.Wait()

	assert.Equal(t, 1, p.Failed())
}

func TestPool_StopIsIdempotentWithWait(t *testing.T) {
	p := worker.NewPool(1, 1)
	p.Start(context.Background())
	p.Wait()

	assert.NotPanics(t, p.Stop)
}

func TestImportFileJob(t *testing.T) {
	database := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, database) })
	importer := catalog.NewImporter(sqlite.NewLanguageRepository(database.DB), sqlite.NewPhraseRepository(database.DB))

	dir := t.TempDir()
	files := map[string]string{
		"es.csv": "language_code,language_name,english,translation,difficulty\nes,Spanish,Hello,Hola,easy\nes,Spanish,Bye,Adiós,easy\n",
		"fr.csv": "language_code,language_name,english,translation,difficulty\nfr,French,Hello,Bonjour,easy\n",
		"bad.txt": "not a catalog",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	var (
		mu      sync.Mutex
		created int
		errs    int
	)
	done := func(_ string, res *catalog.ImportResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs++
			return
		}
		created += res.Created
	}

	p := worker.NewPool(2, len(files))
	p.Start(context.Background())
	for name := range files {
		p.Submit(&worker.ImportFileJob{Importer: importer, Path: filepath.Join(dir, name), Done: done})
	}
	p.Wait()

	assert.Equal(t, 3, created)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, p.Failed())
}
