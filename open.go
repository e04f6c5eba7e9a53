package dokanbook

import (
	"context"
	"fmt"
	"log"
	"time"

	"dokanbook/config"
	"dokanbook/kvstore"
	"dokanbook/kvstore/memory"
	"dokanbook/kvstore/pgkv"
	"dokanbook/kvstore/rediskv"
	"dokanbook/ledger"
	"dokanbook/notify"
)

// App bundles the wired ledger and its notification bus.
type App struct {
	Ledger        *ledger.Ledger
	Notifications *notify.Bus

	closers []func() error
}

// Open selects the state backend from cfg and loads the ledger. Postgres is
// used when DATABASE_URL is set and must be reachable; otherwise Redis when
// REDIS_ADDR is set, falling back to in-memory state with a warning if it is
// not reachable; otherwise in-memory state.
func Open(ctx context.Context, cfg config.Config) (*App, error) {
	var kv kvstore.Store
	closers := make([]func() error, 0, 1)

	switch {
	case cfg.DatabaseURL != "":
		pg, err := pgkv.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres unavailable (%w) and DATABASE_URL is set; refusing in-memory fallback", err)
		}
		kv = pg
		closers = append(closers, pg.Close)
		log.Println("[dokanbook] store: postgres")
	case cfg.RedisAddr != "":
		r := rediskv.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := r.Ping(ctx); err != nil {
			log.Printf("[dokanbook] WARN: redis unavailable (%v), using in-memory store", err)
			_ = r.Close()
			kv = memory.New()
		} else {
			kv = r
			closers = append(closers, r.Close)
			log.Println("[dokanbook] store: redis")
		}
	default:
		kv = memory.New()
		log.Println("[dokanbook] store: in-memory")
	}

	bus := notify.New(time.Duration(cfg.NotificationTTLSeconds) * time.Second)

	led, err := ledger.Open(ctx, kv, bus)
	if err != nil {
		bus.Close()
		for _, closeFn := range closers {
			_ = closeFn()
		}
		return nil, err
	}

	return &App{Ledger: led, Notifications: bus, closers: closers}, nil
}

// Close stops notification timers and releases the state backend.
func (a *App) Close() error {
	a.Notifications.Close()

	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
