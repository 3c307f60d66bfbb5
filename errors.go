package cacti

import "fmt"

// ErrNilRole is returned by Create when the supplied Role is nil.
var ErrNilRole = fmt.Errorf("cacti: role must not be nil")

// ErrOutOfRange is returned by Send when the target ActorID does not, and
// never did, name an actor in this System.
var ErrOutOfRange = fmt.Errorf("cacti: actor id out of range")

// ErrRefused is returned by Send when the target actor has already
// processed a TagStop message and will not accept further mail.
var ErrRefused = fmt.Errorf("cacti: actor has stopped accepting messages")

// ErrShuttingDown is returned by Context.Spawn (and the runtime's own
// handling of TagSpawn) once a drain has begun; a draining System refuses
// new spawns, though Send and in-flight actors are otherwise unaffected.
var ErrShuttingDown = fmt.Errorf("cacti: system is shutting down")

// FatalError reports a violation of the runtime's own contract: mailbox
// capacity exhausted by an actor that refuses to make progress, the actor
// table exceeding Config.MaxActors, or other conditions the scheduler
// cannot recover from without corrupting its invariants. A FatalError is
// raised via panic, never returned, because the invariant it reports is one
// the caller cannot have legally caused through the public API alone.
type FatalError struct {
	// Op names the internal operation that detected the violation.
	Op string
	// Err is the underlying condition.
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("cacti: fatal: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// raise panics with a *FatalError built from op and err. It is the only
// place in the package that turns an internal invariant violation into a
// panic.
func raise(op string, err error) {
	panic(&FatalError{Op: op, Err: err})
}

// ErrMailboxFull is wrapped into a FatalError when an actor's mailbox has
// reached Config.MailboxCapacity and cannot accept another message.
var ErrMailboxFull = fmt.Errorf("mailbox at capacity")

// ErrTooManyActors is wrapped into a FatalError when spawning would exceed
// Config.MaxActors.
var ErrTooManyActors = fmt.Errorf("actor table exhausted")

// ErrUnknownTag is wrapped into a FatalError when a message's Tag matches
// neither a reserved tag nor any handler index in the receiving actor's
// Role. A non-reserved tag with no handler is a protocol error, not a
// dead letter: roles are expected to declare a handler for every tag they
// may legally receive.
var ErrUnknownTag = fmt.Errorf("message tag has no handler")
