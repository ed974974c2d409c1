package varvara

import (
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// ConsoleInputHost puts stdin in raw mode and feeds bytes into a Console's
// read port, firing its vector for each byte (SPEC_FULL.md §5). It is
// grounded almost directly on
// IntuitionAmiga-IntuitionEngine/terminal_host.go's TerminalHost:
// term.MakeRaw/term.Restore, a stop channel guarded by sync.Once, and a
// reader goroutine polling a non-blocking fd. Adapted from that project's
// MMIO-register push model to this project's vector-address push model
// (Console.PushInput).
//
// Only constructed by cmd/uxn for interactive runs — never in tests.
type ConsoleInputHost struct {
	console     *Console
	fd          int
	oldState    *term.State
	nonblockSet bool
	stopCh      chan struct{}
	done        chan struct{}
	stopped     sync.Once
}

// NewConsoleInputHost returns a host that will feed stdin bytes into console.
func NewConsoleInputHost(console *Console) *ConsoleInputHost {
	return &ConsoleInputHost{
		console: console,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading it on a
// background goroutine. Call Stop to restore stdin.
func (h *ConsoleInputHost) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return err
	}
	h.oldState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
		close(h.done)
		return err
	}
	h.nonblockSet = true

	go h.run()
	return nil
}

func (h *ConsoleInputHost) run() {
	defer close(h.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			h.console.PushInput(buf[0])
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Stop terminates the reader goroutine and restores stdin to its prior
// mode. Safe to call more than once.
func (h *ConsoleInputHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldState != nil {
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
	}
}
