package wizard

import (
	"fmt"
	"sync/atomic"
	"time"
)

// IDGenerator produces transfer request identifiers
type IDGenerator interface {
	NewTransferID(now time.Time) string
}

// TimeIDGenerator issues "TXN<unix-millis>" identifiers. When two transfers are submitted in
// the same millisecond the later one is bumped forward so identifiers never repeat.
type TimeIDGenerator struct {
	last atomic.Int64
}

// NewTransferID returns the next identifier for a transfer submitted at now
func (g *TimeIDGenerator) NewTransferID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		last := g.last.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return fmt.Sprintf("TXN%d", next)
		}
	}
}
