package cacti

import "fmt"

// ActorID identifies an actor within a System. Identifiers are dense,
// non-negative, and assigned in strictly increasing order starting at 0;
// they are never reused or renumbered.
type ActorID int64

// String implements fmt.Stringer.
func (id ActorID) String() string {
	return fmt.Sprintf("actor-%d", int64(id))
}

// Tag identifies the kind of a Message. Tags in [0, len(Role.Handlers))
// index into the receiving actor's handler table. TagSpawn and TagStop are
// reserved by the runtime and must never be used as handler indices;
// TagHello is 0 and is delivered to Handlers[0].
type Tag uint32

const (
	// TagHello is delivered as the first message to every newly created
	// actor. Its Payload is the ActorID of the spawning actor (0 for the
	// root actor). TagHello shares its numeric value with handler index
	// 0: a role's Handlers[0] receives both HELLO and any ordinary
	// message sent with Tag(0).
	TagHello Tag = 0x0

	// TagSpawn, when sent to an actor, creates a new child actor. Its
	// Payload must be a *Role for the child. The runtime dispatches this
	// tag itself; it is never passed to a role handler.
	TagSpawn Tag = 0x06057a6e

	// TagStop, when processed, marks the receiving actor as no longer
	// accepting new messages. Messages already enqueued still run. The
	// runtime dispatches this tag itself; it is never passed to a role
	// handler.
	TagStop Tag = 0x60bedead
)

// Message is the unit of communication between actors: a tag identifying how
// to handle it, and an opaque payload. The runtime never copies, inspects,
// or frees Payload; ownership remains with the caller for the lifetime of
// the Go garbage collector's normal rules.
type Message struct {
	Tag     Tag
	Payload any
}

// Handler processes one message delivered to an actor. It may read and
// replace the actor's state via ctx, and may send further messages
// (including to itself) via ctx.Send. A Handler must not retain ctx beyond
// the call: it is only valid for the duration of the dispatch.
//
// A Handler that panics aborts the process; the runtime does not recover
// user faults (see FatalError for the runtime's own contract violations).
type Handler func(ctx *Context, msg Message)

// Role is a read-only, immutable dispatch table shared by every actor
// created with it. A message with tag t such that 0 <= t < len(Handlers)
// dispatches to Handlers[t]; TagSpawn and TagStop are handled by the runtime
// and must not be used as ordinary handler indices.
type Role struct {
	Handlers []Handler
}

func (r *Role) handlerFor(tag Tag) (Handler, bool) {
	idx := int(tag)
	if idx < 0 || idx >= len(r.Handlers) {
		return nil, false
	}
	return r.Handlers[idx], true
}
