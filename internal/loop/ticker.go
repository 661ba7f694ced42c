package loop

import (
	"context"
	"time"
)

// Ticker is a self-paced FrameRequester. Run steps the pending frames at a
// fixed rate until nothing is pending or the context ends.
type Ticker struct {
	*Manual
	interval time.Duration
}

// NewTicker creates a ticker running at tickRate frames per second.
// A tickRate <= 0 runs frames back to back.
func NewTicker(tickRate int) *Ticker {
	var interval time.Duration
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	return &Ticker{Manual: NewManual(), interval: interval}
}

// Run blocks, stepping frames until no frame is pending or ctx is done.
// It returns the number of frames stepped.
func (t *Ticker) Run(ctx context.Context) (int, error) {
	frames := 0
	if t.interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return frames, err
			}
			if !t.Step() {
				return frames, nil
			}
			frames++
		}
	}

	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		if t.Pending() == 0 {
			return frames, nil
		}
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case <-tk.C:
			if t.Step() {
				frames++
			}
		}
	}
}
