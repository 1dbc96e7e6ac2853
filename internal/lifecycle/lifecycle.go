// Package lifecycle coordinates serve-mode shutdown. Repeated interrupts
// step an explicit state machine instead of poking global counters:
// Running -> ShuttingDown on the first SIGINT, ForceExiting on the second
// or when the grace period runs out.
package lifecycle

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// State is the shutdown phase of the server process.
type State int

const (
	Running State = iota
	ShuttingDown
	ForceExiting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting-down"
	case ForceExiting:
		return "force-exiting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Machine drives the shutdown state for one server process.
type Machine struct {
	mu    sync.Mutex
	state State
	done  chan struct{}
	grace time.Duration

	// ExitFunc is called to terminate the process. Tests replace it.
	ExitFunc func(code int)
}

// New returns a Machine in Running state. grace is how long a graceful
// shutdown may take before it is forced.
func New(grace time.Duration) *Machine {
	return &Machine{
		done:     make(chan struct{}),
		grace:    grace,
		ExitFunc: os.Exit,
	}
}

// State returns the current shutdown phase.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Done is closed once shutdown begins.
func (m *Machine) Done() <-chan struct{} {
	return m.done
}

// Signal feeds one OS signal into the machine.
func (m *Machine) Signal(sig os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch sig {
	case syscall.SIGTERM:
		fmt.Fprintln(os.Stderr, "\nReceived SIGTERM, shutting down gracefully...")
		m.beginShutdownLocked()
		m.ExitFunc(0)
	case os.Interrupt:
		if m.state == Running {
			fmt.Fprintln(os.Stderr, "\nReceived SIGINT, shutting down gracefully... (Press Ctrl+C again to force)")
			m.beginShutdownLocked()
			go m.forceAfterGrace()
		} else {
			fmt.Fprintln(os.Stderr, "\nForce exiting immediately...")
			m.state = ForceExiting
			m.ExitFunc(1)
		}
	}
}

func (m *Machine) beginShutdownLocked() {
	if m.state == Running {
		m.state = ShuttingDown
		close(m.done)
	}
}

// forceAfterGrace exits the process if a graceful shutdown is still hanging
// once the grace period elapses.
func (m *Machine) forceAfterGrace() {
	time.Sleep(m.grace)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == ShuttingDown {
		fmt.Fprintln(os.Stderr, "Force exiting...")
		m.state = ForceExiting
		m.ExitFunc(0)
	}
}

// Watch registers for SIGINT and SIGTERM and feeds them into the machine
// until the process exits.
func (m *Machine) Watch() {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range ch {
			m.Signal(sig)
		}
	}()
}
