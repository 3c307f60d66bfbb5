package commands

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/actorcore/cacti"
)

var drainCmd = &cobra.Command{
	Use:   "drain-demo",
	Short: "Run a long fan-out and interrupt it midway to show a graceful drain",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := fanoutWorkers
		var reported atomic.Int64

		worker := &cacti.Role{
			Handlers: []cacti.Handler{
				func(ctx *cacti.Context, msg cacti.Message) {}, // HELLO
				func(ctx *cacti.Context, msg cacti.Message) {
					time.Sleep(5 * time.Millisecond)
					reported.Add(1)
				},
			},
		}

		root := &cacti.Role{
			Handlers: []cacti.Handler{
				func(ctx *cacti.Context, msg cacti.Message) {
					for i := 0; i < n; i++ {
						id, err := ctx.Spawn(worker)
						if err != nil {
							continue
						}
						ctx.Send(id, cacti.Message{Tag: cacti.Tag(1)})
					}
				},
			},
		}

		sys, _, err := cacti.Create(root,
			cacti.WithWorkerCount(workerCount),
			cacti.WithLogger(logger),
			cacti.WithMaxActors(n+2),
		)
		if err != nil {
			return err
		}

		stop := sys.WatchSignals(context.Background())
		defer stop()

		go func() {
			time.Sleep(10 * time.Millisecond)
			self, err := os.FindProcess(os.Getpid())
			if err == nil {
				_ = self.Signal(os.Interrupt)
			}
		}()

		if err := sys.Join(); err != nil {
			return err
		}

		fmt.Printf("drained with %d of %d workers having reported\n", reported.Load(), n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drainCmd)
}
