package hold

import (
	"sync"
	"time"
)

// Ticker is the minimal surface the controller needs from its countdown
// timer: something that can be stopped.
type Ticker interface {
	Stop()
}

// TickerFactory creates a recurring one-second ticker invoking onTick until
// stopped. The controller holds at most one live ticker at a time.
type TickerFactory func(onTick func()) Ticker

// secondTicker runs a time.Ticker on its own goroutine. Stop is safe to call
// more than once. A tick already in flight when Stop returns may still be
// delivered; the controller's seq guard discards it.
type secondTicker struct {
	done chan struct{}
	once sync.Once
}

// NewSecondTicker is the default TickerFactory, backed by time.Ticker.
func NewSecondTicker(onTick func()) Ticker {
	s := &secondTicker{done: make(chan struct{})}
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-t.C:
				onTick()
			}
		}
	}()
	return s
}

func (s *secondTicker) Stop() {
	s.once.Do(func() { close(s.done) })
}
