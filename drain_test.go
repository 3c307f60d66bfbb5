package cacti

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestDrainStopsEveryLiveActor is scenario S6: draining mid-run delivers
// STOP to every actor that is still willing to accept it, refuses new
// spawns from that point on, and the system still terminates cleanly.
func TestDrainStopsEveryLiveActor(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n = 20
	var started atomic.Int64

	worker := &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {
				started.Add(1)
				time.Sleep(20 * time.Millisecond)
			},
		},
	}

	spawnedAll := make(chan struct{})
	root := &Role{
		Handlers: []Handler{
			func(ctx *Context, msg Message) {
				for i := 0; i < n; i++ {
					_, _ = ctx.Spawn(worker)
				}
				close(spawnedAll)
			},
		},
	}

	sys, _, err := Create(root, WithWorkerCount(4), WithMaxActors(n+2))
	require.NoError(t, err)

	<-spawnedAll

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sys.Drain(ctx))

	// Draining must have refused any spawn attempted after it began.
	_, err = sys.spawn(0, worker)
	require.ErrorIs(t, err, ErrShuttingDown)

	require.NoError(t, sys.Join())
	require.True(t, started.Load() > 0)
}
