package verify

import (
	"context"
	"sync"
	"sync/atomic"

	"svw.info/sudokusolve/internal/domain"
)

// Report summarizes a batch verification run.
type Report struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
}

// VerifyAll submits every board with at most workers requests in flight.
// OnResult, when non-nil, is called once per board from worker goroutines
// and must be safe for concurrent use. Network or server failures count a
// board as unverified rather than aborting the batch.
func (c *Client) VerifyAll(ctx context.Context, boards []*domain.Board, workers int, onResult func(i int, verified bool, err error)) Report {
	if workers <= 0 {
		workers = 1
	}
	throttle := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var verified atomic.Int64

	for i, b := range boards {
		if ctx.Err() != nil {
			break
		}
		throttle <- struct{}{}
		wg.Add(1)
		go func(i int, b *domain.Board) {
			defer func() {
				<-throttle
				wg.Done()
			}()
			ok, err := c.Verify(ctx, b)
			if err != nil {
				c.logger.Warn("verify request failed", "puzzle", i, "err", err)
			}
			if ok {
				verified.Add(1)
			}
			if onResult != nil {
				onResult(i, ok, err)
			}
		}(i, b)
	}
	wg.Wait()
	return Report{Total: len(boards), Verified: int(verified.Load())}
}
