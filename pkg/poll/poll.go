package poll

import (
	"context"
	"time"
)

// Poller runs a function, then idles a fixed interval, until its context ends.
type Poller struct {
	interval time.Duration
}

func New(interval time.Duration) *Poller {
	return &Poller{interval: interval}
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run blocks until ctx is done and returns ctx.Err().
func (p *Poller) Run(ctx context.Context, fn func(ctx context.Context)) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(ctx)
		timer.Reset(p.interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
