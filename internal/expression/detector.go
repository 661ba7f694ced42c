package expression

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/event"
)

// Dispatcher delivers named events. *event.Bus implements it.
type Dispatcher interface {
	Dispatch(name string) int
}

// Detector dispatches event.Jump when a new sample reaches the threshold.
// A repeated identical sample does not fire again. Safe for concurrent use.
type Detector struct {
	threshold float64
	out       Dispatcher
	logger    *log.Logger

	mu      sync.Mutex
	prev    float64
	hasPrev bool
	fired   int
}

// NewDetector creates a detector dispatching to out.
func NewDetector(threshold float64, out Dispatcher, logger *log.Logger) *Detector {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Detector{threshold: threshold, out: out, logger: logger}
}

// Observe feeds one score and reports whether a jump was dispatched.
func (d *Detector) Observe(score float64) bool {
	d.mu.Lock()
	changed := !d.hasPrev || score != d.prev
	d.prev, d.hasPrev = score, true
	fire := changed && score >= d.threshold
	if fire {
		d.fired++
	}
	d.mu.Unlock()

	if fire {
		d.out.Dispatch(event.Jump)
	}
	return fire
}

// Fired returns how many jumps were dispatched.
func (d *Detector) Fired() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fired
}

// Consume reads samples line by line until EOF, a read error or ctx is done.
// Malformed lines are logged and skipped. EOF is not an error.
func (d *Detector) Consume(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		score, err := ParseSample(sc.Text())
		if err != nil {
			d.logger.Warn("skipping sample", "err", err)
			continue
		}
		d.Observe(score)
	}
	return sc.Err()
}
