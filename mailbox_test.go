package cacti

import "testing"

func TestMailboxPushPopOrder(t *testing.T) {
	m := newMailbox(4)

	for i := 0; i < 4; i++ {
		if !m.push(Message{Tag: Tag(i)}) {
			t.Fatalf("push %d: expected capacity", i)
		}
	}
	if !m.full() {
		t.Fatal("expected mailbox to report full")
	}
	if m.push(Message{Tag: 99}) {
		t.Fatal("push past capacity should fail")
	}

	for i := 0; i < 4; i++ {
		msg, ok := m.pop()
		if !ok {
			t.Fatalf("pop %d: expected a message", i)
		}
		if msg.Tag != Tag(i) {
			t.Fatalf("pop %d: got tag %d, want %d", i, msg.Tag, i)
		}
	}
	if !m.empty() {
		t.Fatal("expected mailbox to report empty")
	}
	if _, ok := m.pop(); ok {
		t.Fatal("pop on empty mailbox should fail")
	}
}

func TestMailboxWrapsAroundRingBuffer(t *testing.T) {
	m := newMailbox(3)

	m.push(Message{Tag: 1})
	m.push(Message{Tag: 2})
	m.pop()
	m.push(Message{Tag: 3})
	m.push(Message{Tag: 4})

	var got []Tag
	for {
		msg, ok := m.pop()
		if !ok {
			break
		}
		got = append(got, msg.Tag)
	}

	want := []Tag{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
