package cacti

import (
	"log/slog"

	"github.com/lightningnetwork/lnd/fn/v2"
)

const (
	// DefaultWorkerCount is the Config.WorkerCount set by DefaultConfig.
	// It matches the reference runtime's POOL_SIZE.
	DefaultWorkerCount = 3

	// DefaultMailboxCapacity is the Config.MailboxCapacity set by
	// DefaultConfig. It matches the reference runtime's ACTOR_QUEUE_LIMIT.
	DefaultMailboxCapacity = 1024

	// DefaultMaxActors is the Config.MaxActors set by DefaultConfig. It
	// matches the reference runtime's CAST_LIMIT.
	DefaultMaxActors = 1 << 20
)

// Config controls the shape of a System: how many workers service the
// ready queue, how deep each actor's mailbox is allowed to grow, and how
// many actors may ever be created. A zero Config is not valid on its own;
// construct one with DefaultConfig and apply Options.
type Config struct {
	// WorkerCount is the number of goroutines draining the ready queue.
	WorkerCount int

	// MailboxCapacity is the maximum number of undelivered messages any
	// single actor may hold. A Send that would exceed it is fatal.
	MailboxCapacity int

	// MaxActors bounds the actor table. A spawn that would exceed it is
	// fatal.
	MaxActors int

	logger fn.Option[*slog.Logger]
}

// DefaultConfig returns a Config with the reference runtime's defaults:
// three workers, a 1024-message mailbox per actor, and room for 2^20
// actors.
func DefaultConfig() *Config {
	return &Config{
		WorkerCount:     DefaultWorkerCount,
		MailboxCapacity: DefaultMailboxCapacity,
		MaxActors:       DefaultMaxActors,
	}
}

// Option mutates a Config at System construction time.
type Option func(*Config)

// WithWorkerCount overrides the number of worker goroutines. Values below 1
// are treated as 1.
func WithWorkerCount(n int) Option {
	return func(cfg *Config) {
		if n < 1 {
			n = 1
		}
		cfg.WorkerCount = n
	}
}

// WithMailboxCapacity overrides the per-actor mailbox depth. Values below 1
// are treated as 1.
func WithMailboxCapacity(n int) Option {
	return func(cfg *Config) {
		if n < 1 {
			n = 1
		}
		cfg.MailboxCapacity = n
	}
}

// WithMaxActors overrides the maximum number of actors ever created in the
// System, stopped ones included. Values below 1 are treated as 1.
func WithMaxActors(n int) Option {
	return func(cfg *Config) {
		if n < 1 {
			n = 1
		}
		cfg.MaxActors = n
	}
}

// WithLogger attaches a structured logger the System will use for its own
// creation, a received drain signal, and the start and completion of a
// drain. Individual spawns and stops are not logged. Without this option
// the System logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.logger = fn.Some(l)
	}
}

// applyOptions builds a Config from DefaultConfig plus the given Options.
func applyOptions(opts []Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// log returns the configured logger, or a discarding logger if none was
// set via WithLogger.
func (c *Config) log() *slog.Logger {
	return c.logger.UnwrapOr(slog.New(slog.DiscardHandler))
}
