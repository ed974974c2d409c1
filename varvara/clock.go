package varvara

import (
	"sync"
	"time"

	"uxn"
	"uxn/internal/uxnlog"
)

// Clock port offsets: a vector address and a tick period in milliseconds.
// A period of zero disables ticking.
const (
	clkVectorOffset = 0x00 // short
	clkPeriodOffset = 0x02 // short, milliseconds
)

// Clock is a vector-firing timer device: it supplements spec.md's event
// loop with a non-graphical external event source, so ExecuteUntilExit's
// Vector/Exit alternation has something to drive besides console input
// (SPEC_FULL.md §5). It is grounded on KTStephano-GVM/vm/devices.go's
// systemTimer: a goroutine holding a resettable time.Timer, reset over a
// channel, signaling its firing over another channel.
type Clock struct {
	page     [16]byte
	resetCh  chan uint16
	vectorCh chan uint16
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *uxnlog.Logger
}

// NewClock returns a Clock with ticking disabled until its period is set.
func NewClock(logger *uxnlog.Logger) *Clock {
	c := &Clock{
		resetCh:  make(chan uint16),
		vectorCh: make(chan uint16, 1),
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
	go c.run()
	return c
}

func (c *Clock) run() {
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-c.stopCh:
			timer.Stop()
			return

		case period := <-c.resetCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			if period > 0 {
				timer.Reset(time.Duration(period) * time.Millisecond)
			}

		case <-timer.C:
			vec := c.Vector()
			if c.logger != nil {
				c.logger.Debugw("clock tick", "vector", vec)
			}
			select {
			case c.vectorCh <- vec:
			default:
			}
			if period := c.Period(); period > 0 {
				timer.Reset(time.Duration(period) * time.Millisecond)
			}
		}
	}
}

func (c *Clock) ReadByte(addr uint16) uint8 { return c.page[addr] }

func (c *Clock) WriteByte(addr uint16, b uint8) {
	c.page[addr] = b
	if addr == clkPeriodOffset || addr == clkPeriodOffset+1 {
		select {
		case c.resetCh <- c.Period():
		case <-c.stopCh:
		}
	}
}

func (c *Clock) ReadMemory(port uint8, size uxn.ItemSize) uxn.Item {
	return uxn.ReadMemory(c, uint16(port), size)
}

func (c *Clock) WriteMemory(port uint8, item uxn.Item) {
	uxn.WriteMemory(c, uint16(port), item)
}

// Vector returns the address stored in the Clock/vector port.
func (c *Clock) Vector() uint16 {
	return uxn.ReadShort(c, clkVectorOffset)
}

// Period returns the configured tick period in milliseconds.
func (c *Clock) Period() uint16 {
	return uxn.ReadShort(c, clkPeriodOffset)
}

// Close stops the Clock's background goroutine. Safe to call more than once.
func (c *Clock) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}
