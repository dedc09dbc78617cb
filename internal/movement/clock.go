package movement

import "time"

// Clock abstracts ticker creation so flight simulations can run against a
// controllable time source in tests.
type Clock interface {
	// NewTicker returns a ticker firing every d.
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers tick signals for a running flight.
type Ticker interface {
	// C returns the channel on which ticks are delivered.
	C() <-chan time.Time

	// Stop releases the ticker's resources.
	Stop()
}

// WallClock is the production Clock backed by the time package.
type WallClock struct{}

// NewTicker returns a ticker backed by time.NewTicker.
func (WallClock) NewTicker(d time.Duration) Ticker {
	return wallTicker{ticker: time.NewTicker(d)}
}

type wallTicker struct {
	ticker *time.Ticker
}

func (t wallTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t wallTicker) Stop() {
	t.ticker.Stop()
}
