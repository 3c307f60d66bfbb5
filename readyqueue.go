package cacti

import "github.com/gammazero/deque"

// readyQueue holds the dense FIFO sequence of actor ids that currently have
// at least one undelivered message and are not already being serviced by a
// worker. An actor id appears in the queue at most once at a time; the
// "queued" bit on its actorRecord enforces that, mirroring the original
// scheduler's interlock between an actor's queued flag and its presence in
// the ready list.
//
// readyQueue is not safe for concurrent use on its own; callers hold the
// owning System's mutex for every operation.
type readyQueue struct {
	q deque.Deque[ActorID]
}

func newReadyQueue() *readyQueue {
	return &readyQueue{}
}

func (rq *readyQueue) push(id ActorID) {
	rq.q.PushBack(id)
}

func (rq *readyQueue) pop() (ActorID, bool) {
	if rq.q.Len() == 0 {
		return 0, false
	}
	return rq.q.PopFront(), true
}

func (rq *readyQueue) len() int {
	return rq.q.Len()
}
