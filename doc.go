// Package cacti implements an in-process actor runtime: a fixed-size worker
// pool dispatching messages out of per-actor mailboxes via a single global
// ready queue, coordinated by one mutex and one condition variable.
//
// Actors are isolated units of state, addressed by a dense, monotonically
// increasing ActorID, that communicate only by asynchronous Message sends.
// Each actor processes its mailbox one message at a time, in arrival order;
// unrelated actors run concurrently across the worker pool. The system
// reaches quiescence — and shuts down — once every actor has stopped, either
// because it told itself to, or because an external interrupt triggered a
// graceful drain.
//
// The package is a single cohesive unit, not split across sub-packages,
// because its correctness is the interplay of exactly three data structures
// (mailbox, ready queue, actor table) under one lock; splitting them apart
// would only hide the coupling that makes the scheduler correct.
package cacti
