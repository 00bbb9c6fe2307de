package digest

import (
	"context"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/iotaledger/tools/ds/orderedmap"
)

// SumFiles digests the given files on a bounded pool of workers.
//
// The result is keyed by path and ordered like the input. A path that occurs more than once is only digested once
// and keeps the position of its first occurrence. The first failure aborts the remaining work and is returned.
func SumFiles(ctx context.Context, paths []string, optionalOptions ...Option) (*orderedmap.OrderedMap[string, Digest], error) {
	options := defaultOptions.Override(optionalOptions...)

	positions := orderedmap.New[string, int]()
	for _, path := range paths {
		positions.Set(path, positions.Size())
	}
	uniquePaths := positions.Keys()

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		digests   = make([]Digest, len(uniquePaths))
		firstErr  error
		errOnce   sync.Once
		tasksWg   sync.WaitGroup
		setFailed = func(err error) {
			errOnce.Do(func() {
				firstErr = err
				cancel()
			})
		}
	)

	pool, err := ants.NewPoolWithFunc(options.WorkerCount, func(task interface{}) {
		defer tasksWg.Done()

		index, _ := task.(int)
		if batchCtx.Err() != nil {
			return
		}

		digest, err := sumFile(options.Hasher, uniquePaths[index])
		if err != nil {
			setFailed(errors.Wrapf(err, "failed to digest %s", uniquePaths[index]))

			return
		}
		digests[index] = digest

		options.Logger.Debugw("digested file", "path", uniquePaths[index], "digest", digest.Hex())
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create worker pool")
	}
	defer pool.Release()

	for index := range uniquePaths {
		if batchCtx.Err() != nil {
			break
		}

		tasksWg.Add(1)
		if err := pool.Invoke(index); err != nil {
			tasksWg.Done()
			setFailed(errors.Wrap(err, "failed to submit task"))

			break
		}
	}
	tasksWg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "digest batch aborted")
	}

	result := orderedmap.New[string, Digest]()
	for index, path := range uniquePaths {
		result.Set(path, digests[index])
	}

	options.Logger.Debugf("digested %d files", result.Size())

	return result, nil
}

func sumFile(hasher Hasher, path string) (Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}

	return hasher.Sum(data), nil
}
