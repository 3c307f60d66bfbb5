package cacti

// worker.go implements the fixed pool of goroutines that drain the ready
// queue. Workers share a single mutex and condition variable with Send,
// Create, and stop: a worker blocks on the condition variable whenever the
// ready queue is empty, and is woken the moment deliverLocked makes an
// actor runnable, exactly mirroring the wait/signal pairing of the
// original single-threaded scheduler's event loop.

// startWorkers launches Config.WorkerCount goroutines, each running
// s.workerLoop, and records them on s.wg so Join can wait for them to
// exit after the pool is told to stop.
func (s *System) startWorkers() {
	s.halting = false
	for i := 0; i < s.cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.workerLoop()
	}
}

// stopWorkers tells every worker goroutine to exit once the ready queue
// next goes empty, and wakes them so they notice.
func (s *System) stopWorkers() {
	s.mu.Lock()
	s.halting = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// workerLoop is the body of one worker goroutine: repeatedly wait for a
// runnable actor, dispatch exactly one message on its behalf, and decide
// whether it belongs back on the ready queue.
func (s *System) workerLoop() {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		for s.ready.len() == 0 && !s.halting {
			s.cond.Wait()
		}
		if s.ready.len() == 0 && s.halting {
			s.mu.Unlock()
			return
		}
		id, ok := s.ready.pop()
		if !ok {
			s.mu.Unlock()
			continue
		}
		rec := s.lookupLocked(id)
		if rec == nil {
			s.mu.Unlock()
			continue
		}
		msg, ok := rec.mbox.pop()
		if !ok {
			// Nothing to do; the actor was queued speculatively but
			// its mailbox has since been drained by nobody else,
			// which should not happen under the lock discipline
			// above but is handled defensively.
			rec.queued = false
			s.mu.Unlock()
			continue
		}
		s.mu.Unlock()

		s.dispatch(rec, msg)

		s.mu.Lock()
		if rec.mbox.empty() {
			rec.queued = false
			s.maybeRetireLocked(rec)
		} else {
			s.ready.push(id)
		}
		s.mu.Unlock()
	}
}

// dispatch runs msg against rec outside the System lock: either a
// runtime-reserved tag (SPAWN, STOP) or the actor's own Role handler, which
// also receives HELLO as Handlers[0].
func (s *System) dispatch(rec *actorRecord, msg Message) {
	ctx := &Context{sys: s, self: rec.id, rec: rec}

	switch msg.Tag {
	case TagSpawn:
		child, _ := roleFromPayload(msg.Payload)
		if child != nil {
			_, _ = s.spawn(rec.id, child)
		}
		return
	case TagStop:
		s.stop(rec.id)
		return
	}

	handler, ok := rec.role.handlerFor(msg.Tag)
	if !ok {
		raise("dispatch", ErrUnknownTag)
	}
	handler(ctx, msg)
}

// roleFromPayload extracts a *Role from a TagSpawn message's Payload,
// reporting whether the payload had the expected shape.
func roleFromPayload(payload any) (*Role, bool) {
	r, ok := payload.(*Role)
	return r, ok
}
