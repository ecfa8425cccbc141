package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPreservesSubmissionOrder(t *testing.T) {
	jobs := make([]Job[int], 20)
	for i := range jobs {
		i := i
		jobs[i] = func(context.Context) (int, error) {
			// Later jobs finish earlier; order must still hold.
			time.Sleep(time.Duration(len(jobs)-i) * time.Millisecond)
			return i * 10, nil
		}
	}

	results, err := Run(context.Background(), jobs, 8)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, i*10, r)
	}
}

func TestRunFailFast(t *testing.T) {
	boom := errors.New("job exploded")

	var executed atomic.Int32
	jobs := make([]Job[int], 50)
	for i := range jobs {
		i := i
		jobs[i] = func(context.Context) (int, error) {
			executed.Add(1)
			if i == 3 {
				return 0, boom
			}
			time.Sleep(time.Millisecond)
			return i, nil
		}
	}

	results, err := Run(context.Background(), jobs, 2)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, results)
	// Jobs queued after the failure are skipped once the pool cancels.
	assert.Less(t, int(executed.Load()), len(jobs))
}

func TestRunRespectsWorkerLimit(t *testing.T) {
	const workers = 3

	var current, peak atomic.Int32
	jobs := make([]Job[int], 30)
	for i := range jobs {
		jobs[i] = func(context.Context) (int, error) {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			current.Add(-1)
			return 0, nil
		}
	}

	_, err := Run(context.Background(), jobs, workers)
	require.NoError(t, err)
	assert.LessOrEqual(t, int(peak.Load()), workers)
}

func TestRunEmptyJobList(t *testing.T) {
	results, err := Run[int](context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunInvalidWorkerCount(t *testing.T) {
	jobs := []Job[int]{func(context.Context) (int, error) { return 1, nil }}
	_, err := Run(context.Background(), jobs, 0)
	assert.Error(t, err)
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job[int]{func(context.Context) (int, error) { return 1, nil }}
	_, err := Run(ctx, jobs, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMoreWorkersThanJobs(t *testing.T) {
	jobs := []Job[string]{
		func(context.Context) (string, error) { return "a", nil },
		func(context.Context) (string, error) { return "b", nil },
	}

	results, err := Run(context.Background(), jobs, 16)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, results)
}
