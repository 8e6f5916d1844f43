package realtime

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Notifier fans out table-change events over redis pub/sub. Messages carry no
// row payload: a change event is a broad invalidation signal and consumers
// are expected to reload derived state idempotently. Delivery is best-effort
// and never part of write correctness.
type Notifier struct {
	client *redis.Client
}

// Notify is the global notifier instance. With no redis configured it stays
// a safe no-op.
var Notify = &Notifier{}

// Connect wires the notifier to redis. An empty addr leaves it disabled.
func Connect(addr, password string) {
	if addr == "" {
		log.Println("Realtime notifications disabled (no REDIS_ADDR).")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Realtime notifications disabled, redis unreachable: %v", err)
		return
	}

	Notify.client = client
	log.Println("Realtime notifications enabled.")
}

// channel maps a table name to its pub/sub channel.
func channel(table string) string {
	return table + "_changes"
}

// Publish announces that some row of the table changed.
func (n *Notifier) Publish(ctx context.Context, table string) {
	if n.client == nil {
		return
	}
	if err := n.client.Publish(ctx, channel(table), "changed").Err(); err != nil {
		log.Printf("Failed to publish %s change event: %v", table, err)
	}
}

// Subscribe invokes fn for every change event on the table until ctx is
// cancelled. The subscription is released when the context ends.
func (n *Notifier) Subscribe(ctx context.Context, table string, fn func()) {
	if n.client == nil {
		return
	}

	sub := n.client.Subscribe(ctx, channel(table))
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				fn()
			}
		}
	}()
}
