package render

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
)

// ResolveAll invokes every module accessor of result using up to jobs
// workers (GOMAXPROCS when jobs < 1). Resolution failures are recorded on
// the returned records, never returned. The error is non-nil only when ctx
// is cancelled.
//
// A module reachable under several keys (index and component) is resolved
// once; later keys observe the cached value.
func ResolveAll(ctx context.Context, result *autoload.Result, jobs int) ([]Record, error) {
	logger := output.FromContext(ctx)

	records := Collect(result)
	if len(records) == 0 {
		return records, nil
	}

	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(records)))

	for i := range records {
		rec := &records[i]
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			resolveRecord(rec)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return records, err
	}

	resolved, failed := Counts(records)
	logger.Debug("modules resolved", "resolved", resolved, "failed", failed, "workers", jobs)
	return records, nil
}

func resolveRecord(rec *Record) {
	start := time.Now()
	v, err := rec.module.Get()
	rec.Duration = time.Since(start)

	if err != nil {
		rec.Status = output.StatusFailed
		rec.Error = err
		return
	}
	rec.Status = output.StatusResolved
	rec.Value = v
}
