package commands

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/actorcore/cacti"
)

const (
	tagAdd    cacti.Tag = 1 // worker: add payload into running total
	tagEmit   cacti.Tag = 2 // worker: send running total to the aggregator
	tagReport cacti.Tag = 1 // aggregator: one worker's total arrived
)

var fanoutWorkers int

var fanoutCmd = &cobra.Command{
	Use:   "fanout",
	Short: "Spawn N worker actors, each a small add-and-report accumulator",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := fanoutWorkers
		var received atomic.Int64

		aggregator := &cacti.Role{
			Handlers: []cacti.Handler{
				func(ctx *cacti.Context, msg cacti.Message) {}, // HELLO: nothing to do yet
				func(ctx *cacti.Context, msg cacti.Message) {
					count, _ := ctx.State().(int)
					count++
					ctx.SetState(count)
					received.Add(1)
					if count == n {
						ctx.Stop()
					}
				},
			},
		}

		root := &cacti.Role{
			Handlers: []cacti.Handler{
				func(ctx *cacti.Context, msg cacti.Message) {
					aggID, err := ctx.Spawn(aggregator)
					if err != nil {
						return
					}

					worker := &cacti.Role{
						Handlers: []cacti.Handler{
							func(ctx *cacti.Context, msg cacti.Message) {}, // HELLO: nothing to do yet
							func(ctx *cacti.Context, msg cacti.Message) {
								total, _ := ctx.State().(int)
								total += msg.Payload.(int)
								ctx.SetState(total)
							},
							func(ctx *cacti.Context, msg cacti.Message) {
								total, _ := ctx.State().(int)
								ctx.Send(aggID, cacti.Message{Tag: tagReport, Payload: total})
							},
						},
					}

					for i := 0; i < n; i++ {
						id, err := ctx.Spawn(worker)
						if err != nil {
							continue
						}
						ctx.Send(id, cacti.Message{Tag: tagAdd, Payload: i})
						ctx.Send(id, cacti.Message{Tag: tagEmit})
						ctx.Send(id, cacti.Message{Tag: cacti.TagStop})
					}

					ctx.Stop()
				},
			},
		}

		sys, _, err := cacti.Create(root,
			cacti.WithWorkerCount(workerCount),
			cacti.WithLogger(logger),
			cacti.WithMaxActors(n+4),
		)
		if err != nil {
			return err
		}

		if err := sys.Join(); err != nil {
			return err
		}

		fmt.Printf("aggregator received %d of %d reports\n", received.Load(), n)
		return nil
	},
}

func init() {
	fanoutCmd.Flags().IntVar(&fanoutWorkers, "workers", 100, "Number of fan-out worker actors")
	rootCmd.AddCommand(fanoutCmd)
}
