package cacti

import (
	"context"
	"os"
	"os/signal"
)

// Drain stops admitting new spawns, delivers a TagStop message to every
// actor still accepting mail, and then waits for the System to run to
// quiescence exactly as Join does, except that a caller can bound the wait
// with ctx. Send is otherwise unaffected: actors already in-flight may
// continue exchanging messages among themselves — including messages
// queued ahead of their own STOP — using the regular send path until each
// one drains.
//
// If ctx is canceled before the System quiesces, Drain returns ctx.Err()
// without waiting further; the worker pool and any live actors are left
// running.
func (s *System) Drain(ctx context.Context) error {
	s.mu.Lock()
	s.draining = true
	s.stopAllLocked()
	s.cond.Broadcast()
	s.mu.Unlock()

	s.log.Info("drain requested", "run_id", s.id.String())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Join()
	}()

	select {
	case <-done:
		s.log.Info("drain complete", "run_id", s.id.String())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WatchSignals spawns a goroutine that calls Drain the first time the
// process receives one of sigs (os.Interrupt only if none are given), and
// returns a function that stops watching. It mirrors the original
// scheduler's signal handler, which treated an interrupt as a request to
// let in-flight work finish rather than as an immediate abort.
func (s *System) WatchSignals(ctx context.Context, sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	done := make(chan struct{})
	go func() {
		select {
		case <-ch:
			s.log.Info("signal received, draining", "run_id", s.id.String())
			_ = s.Drain(ctx)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
