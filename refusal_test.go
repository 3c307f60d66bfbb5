package cacti

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestRefusalAfterStop is scenario S5: once an actor has actually processed
// STOP, Send refuses it, including after every message admitted before
// the STOP has run and the actor has drained.
func TestRefusalAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	unblock := make(chan struct{})
	var drained bool

	role := &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {}, // HELLO
			func(ctx *Context, msg Message) {
				<-unblock
				drained = true
			},
		},
	}

	sys, target, err := Create(role, WithWorkerCount(1), WithMailboxCapacity(4))
	require.NoError(t, err)

	// Queue one ordinary message the handler will block on, then STOP.
	// Both sends are admitted: the actor has not yet processed STOP, so
	// it is still accepting mail at the moment each is enqueued.
	require.NoError(t, sys.Send(target, Message{Tag: 1}))
	require.NoError(t, sys.Send(target, Message{Tag: TagStop}))

	close(unblock)
	require.NoError(t, sys.Join())

	require.True(t, drained)
	require.ErrorIs(t, sys.Send(target, Message{Tag: 1}), ErrRefused)
}
