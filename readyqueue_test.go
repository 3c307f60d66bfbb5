package cacti

import "testing"

func TestReadyQueueFIFO(t *testing.T) {
	rq := newReadyQueue()

	for i := 0; i < 5; i++ {
		rq.push(ActorID(i))
	}
	if rq.len() != 5 {
		t.Fatalf("len = %d, want 5", rq.len())
	}

	for i := 0; i < 5; i++ {
		id, ok := rq.pop()
		if !ok {
			t.Fatalf("pop %d: expected an id", i)
		}
		if id != ActorID(i) {
			t.Fatalf("pop %d: got %d, want %d", i, id, i)
		}
	}
	if _, ok := rq.pop(); ok {
		t.Fatal("pop on empty queue should fail")
	}
}
