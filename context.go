package cacti

// Context is the per-dispatch handle passed to a Handler. It identifies the
// actor the handler is running as and lets the handler send further
// messages, including spawning children and stopping itself. A Context is
// only valid for the duration of a single Handler call; a Handler must not
// store it for later use.
type Context struct {
	sys  *System
	self ActorID
	rec  *actorRecord
}

// Self returns the ActorID of the actor currently handling a message. It
// replaces the process-global "current actor" lookup of a single-threaded
// interpreter: in Go, each concurrently dispatching worker has its own
// Context rather than consulting shared, thread-local state.
func (c *Context) Self() ActorID {
	return c.self
}

// State returns the actor's user state, or nil if SetState has never been
// called for it. It is the port of the original handler ABI's
// pointer-to-pointer state slot: an opaque, actor-owned value the runtime
// never inspects.
func (c *Context) State() any {
	return c.rec.udata
}

// SetState replaces the actor's user state. It is only valid to call this
// from within the actor's own Handler; the runtime never calls it.
func (c *Context) SetState(v any) {
	c.rec.udata = v
}

// Send delivers msg to the actor identified by to, exactly as if the
// caller outside any handler had called System.Send. It is the mechanism
// by which an actor talks to its parent, its children, or any sibling it
// has learned the ActorID of. It works the same whether or not the System
// is draining: only spawns are suppressed during a drain.
func (c *Context) Send(to ActorID, msg Message) error {
	return c.sys.Send(to, msg)
}

// Spawn creates a new child actor running role, with c.Self() recorded as
// its parent, and returns the child's id. It is equivalent to sending
// TagSpawn to c.Self() but returns the new id directly rather than
// requiring the caller to intercept its own HELLO.
func (c *Context) Spawn(role *Role) (ActorID, error) {
	return c.sys.spawn(c.self, role)
}

// Stop marks the current actor as no longer willing to accept new mail. Any
// messages already enqueued ahead of this call still run to completion.
func (c *Context) Stop() {
	c.sys.stop(c.self)
}
