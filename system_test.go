package cacti

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestPingStopsImmediately is scenario S1: a root actor that stops itself
// the moment it receives HELLO.
func TestPingStopsImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)

	var gotHello any
	role := &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {
				gotHello = msg.Payload
				ctx.Stop()
			},
		},
	}

	sys, root, err := Create(role, WithWorkerCount(2))
	require.NoError(t, err)
	require.Equal(t, ActorID(0), root)

	require.NoError(t, sys.Join())
	require.Equal(t, ActorID(0), gotHello)
}

// TestSpawnChainDepthFive is scenario S2: a chain of actors, each spawning
// the next until a fixed depth, each reporting its parent's id via HELLO.
func TestSpawnChainDepthFive(t *testing.T) {
	defer goleak.VerifyNone(t)

	const depth = 5

	var rec chainRecorder
	var role *Role
	role = &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {
				rec.record(ctx.Self(), msg.Payload.(ActorID))
				if int(ctx.Self()) < depth {
					_, err := ctx.Spawn(role)
					require.NoError(t, err)
				}
				ctx.Stop()
			},
		},
	}

	sys, root, err := Create(role, WithWorkerCount(3), WithMaxActors(depth+2))
	require.NoError(t, err)
	require.Equal(t, ActorID(0), root)

	require.NoError(t, sys.Join())

	want := map[ActorID]ActorID{0: 0, 1: 0, 2: 1, 3: 2, 4: 3, 5: 4}
	require.Equal(t, want, rec.snapshot())
}

// chainRecorder collects the HELLO payload each actor in a spawn chain
// observed, guarded by its own lock since handlers for distinct actors run
// concurrently across workers.
type chainRecorder struct {
	mu   sync.Mutex
	seen map[ActorID]ActorID
}

func (c *chainRecorder) record(id, parent ActorID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen == nil {
		c.seen = make(map[ActorID]ActorID)
	}
	c.seen[id] = parent
}

func (c *chainRecorder) snapshot() map[ActorID]ActorID {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[ActorID]ActorID, len(c.seen))
	for k, v := range c.seen {
		out[k] = v
	}
	return out
}

// TestStopTwiceIsIdempotent covers property 7: a second Send of STOP to an
// actor that already stopped accepting mail returns ErrRefused rather than
// taking effect a second time.
func TestStopTwiceIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	role := &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {}, // HELLO: nothing to do
		},
	}

	sys, root, err := Create(role, WithWorkerCount(1))
	require.NoError(t, err)

	err1 := sys.Send(root, Message{Tag: TagStop})
	require.NoError(t, err1)

	require.Eventually(t, func() bool {
		return sys.Send(root, Message{Tag: TagStop}) != nil
	}, time.Second, time.Millisecond)

	err2 := sys.Send(root, Message{Tag: TagStop})
	require.NoError(t, sys.Join())

	require.ErrorIs(t, err2, ErrRefused)
}

// TestRootOnlyCreateJoin covers property 8: a system with only the root
// actor, whose handler immediately stops itself, terminates cleanly.
func TestRootOnlyCreateJoin(t *testing.T) {
	defer goleak.VerifyNone(t)

	role := &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {
				ctx.Stop()
			},
		},
	}

	sys, _, err := Create(role)
	require.NoError(t, err)
	require.NoError(t, sys.Join())
}
