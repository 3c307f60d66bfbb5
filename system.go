package cacti

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// System is a running actor runtime: an actor table, a shared ready queue,
// and a fixed pool of workers dispatching from it. A System is created by
// Create and is independent of every other System in the process — there
// is no process-wide singleton, so two Systems may coexist without
// interfering with each other.
//
// A System's exported methods are safe for concurrent use.
type System struct {
	cfg *Config
	log *slog.Logger
	id  uuid.UUID

	mu   sync.Mutex
	cond *sync.Cond

	actors   []*actorRecord
	ready    *readyQueue
	draining bool
	halting  bool
	live     int // count of actors not in actorDone

	wg sync.WaitGroup
}

// Create builds a System around root, the first actor, and starts its
// worker pool. Before Create returns, a HELLO message with Payload set to
// ActorID(0) — its own id, since it has no parent — is enqueued in the root
// actor's mailbox.
//
// Create fails only if role is nil; every other configuration error is
// normalized by Option (out-of-range values are clamped, not rejected).
func Create(role *Role, opts ...Option) (*System, ActorID, error) {
	if role == nil {
		return nil, 0, ErrNilRole
	}
	cfg := applyOptions(opts)

	sys := &System{
		cfg:   cfg,
		log:   cfg.log(),
		id:    uuid.New(),
		ready: newReadyQueue(),
	}
	sys.cond = sync.NewCond(&sys.mu)

	sys.log.Info("actor system created",
		"run_id", sys.id.String(),
		"workers", cfg.WorkerCount,
		"mailbox_capacity", cfg.MailboxCapacity,
		"max_actors", cfg.MaxActors,
	)

	sys.startWorkers()

	rootID := sys.spawnLocked0(rootParent, role)

	return sys, rootID, nil
}

// rootParent is the parent recorded for the root actor. It is never a
// valid ActorID assigned to a real actor (actor ids start at 0 and the
// root's own id is 0). It is only stored as the root record's parent; the
// root's HELLO payload is ActorID(0) instead (see spawnLocked0).
const rootParent = ActorID(-1)

// spawnLocked0 performs the root spawn during Create, before any worker can
// possibly race the actor table, and returns the new root's id.
func (s *System) spawnLocked0(parent ActorID, role *Role) ActorID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.addActorLocked(parent, role)
	hello := Message{Tag: TagHello, Payload: ActorID(0)}
	s.deliverLocked(id, hello)
	return id
}

// addActorLocked allocates a new actor table slot for role with the given
// parent and returns its id. The caller holds s.mu.
func (s *System) addActorLocked(parent ActorID, role *Role) ActorID {
	if len(s.actors) >= s.cfg.MaxActors {
		raise("spawn", ErrTooManyActors)
	}
	id := ActorID(len(s.actors))
	rec := newActorRecord(id, parent, role, s.cfg.MailboxCapacity)
	s.actors = append(s.actors, rec)
	s.live++
	return id
}

// lookupLocked returns the actor record for id, or nil if id was never
// assigned. The caller holds s.mu.
func (s *System) lookupLocked(id ActorID) *actorRecord {
	if id < 0 || int(id) >= len(s.actors) {
		return nil
	}
	return s.actors[id]
}

// deliverLocked pushes msg onto id's mailbox and, if that makes the actor
// newly runnable, enqueues it on the ready queue and wakes a worker. The
// caller holds s.mu.
func (s *System) deliverLocked(id ActorID, msg Message) {
	rec := s.lookupLocked(id)
	if rec == nil {
		raise("deliver", ErrOutOfRange)
	}
	if !rec.mbox.push(msg) {
		raise("deliver", ErrMailboxFull)
	}
	if !rec.queued {
		rec.queued = true
		s.ready.push(id)
		s.cond.Signal()
	}
}

// Send delivers msg to the actor identified by to. It returns ErrOutOfRange
// if to never named an actor and ErrRefused if that actor has already
// processed TagStop. A successful Send only guarantees enqueueing; delivery
// order across distinct senders to the same mailbox is the order in which
// their Sends acquired the System's lock.
//
// Send's contract is unaffected by a System draining: a drain only
// suppresses new spawns (see spawn), it does not stop actors already
// in-flight from exchanging messages among themselves while they unwind.
func (s *System) Send(to ActorID, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.lookupLocked(to)
	if rec == nil {
		return ErrOutOfRange
	}
	if !rec.acceptsNewMail() {
		return ErrRefused
	}
	s.deliverLocked(to, msg)
	return nil
}

// spawn creates a child of parent running role and delivers its HELLO. It
// backs both Context.Spawn and the runtime's handling of a TagSpawn
// message.
func (s *System) spawn(parent ActorID, role *Role) (ActorID, error) {
	if role == nil {
		return 0, ErrNilRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draining {
		return 0, ErrShuttingDown
	}

	id := s.addActorLocked(parent, role)
	s.deliverLocked(id, Message{Tag: TagHello, Payload: parent})
	return id, nil
}

// stop marks id as no longer accepting new mail. It backs both
// Context.Stop and the runtime's handling of a TagStop message.
func (s *System) stop(id ActorID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.lookupLocked(id)
	if rec == nil || rec.state != actorAlive {
		return
	}
	rec.state = actorStopping
	s.maybeRetireLocked(rec)
}

// maybeRetireLocked transitions a stopping actor with an empty mailbox to
// actorDone and decrements the live count, waking any Join once it reaches
// zero. The caller holds s.mu.
func (s *System) maybeRetireLocked(rec *actorRecord) {
	if rec.state == actorStopping && rec.mbox.empty() && !rec.queued {
		rec.state = actorDone
		s.live--
		if s.live == 0 {
			s.cond.Broadcast()
		}
	}
}

// stopAllLocked enqueues a TagStop message to every actor still willing to
// accept mail, exactly as if something had called Send(id, TagStop) on
// each of them. It is what a drain uses to unwind a running System rather
// than waiting indefinitely for actors to stop themselves. The caller
// holds s.mu.
func (s *System) stopAllLocked() {
	for _, rec := range s.actors {
		if rec.acceptsNewMail() {
			s.deliverLocked(rec.id, Message{Tag: TagStop})
		}
	}
}

// Join blocks until every actor in the System has stopped, then halts the
// worker pool. It is idempotent: calling it again after the System has
// already quiesced returns immediately.
func (s *System) Join() error {
	s.mu.Lock()
	for s.live > 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()

	s.stopWorkers()
	s.wg.Wait()
	return nil
}
