package cacti

// actorState is the lifecycle state of a single actor, tracked alongside
// its mailbox in the System's actor table.
type actorState int

const (
	// actorAlive accepts new messages and is eligible for scheduling.
	actorAlive actorState = iota

	// actorStopping has processed TagStop: it refuses new sends, but any
	// messages already in its mailbox at that point still run.
	actorStopping

	// actorDone has drained its mailbox after stopping and will never be
	// scheduled again.
	actorDone
)

// actorRecord is the System's bookkeeping for one actor: its role, its
// mailbox, and the scheduling bits the worker pool and ready queue consult
// under the System's lock.
type actorRecord struct {
	id     ActorID
	role   *Role
	parent ActorID
	mbox   *mailbox
	state  actorState
	udata  any // user state, read/written only by the worker currently dispatching this actor

	// queued is true iff this actor's id currently sits in the ready
	// queue or a worker is currently dispatching one of its messages. It
	// exists so deliverLocked never pushes the same actor onto
	// the ready queue twice: a busy actor accumulates mail in its
	// mailbox and is re-queued, once, when its current dispatch
	// finishes and the mailbox is found non-empty.
	queued bool
}

func newActorRecord(id, parent ActorID, role *Role, mailboxCapacity int) *actorRecord {
	return &actorRecord{
		id:     id,
		role:   role,
		parent: parent,
		mbox:   newMailbox(mailboxCapacity),
		state:  actorAlive,
	}
}

// acceptsNewMail reports whether System.Send may still enqueue a message
// for a: an
// actor that has processed TagStop no longer admits new mail, even while
// messages already queued ahead of the stop are still draining.
func (a *actorRecord) acceptsNewMail() bool {
	return a.state == actorAlive
}
