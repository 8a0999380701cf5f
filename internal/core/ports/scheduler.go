package ports

import "time"

// TickScheduler runs periodic tasks on the caller's event loop.
//
//go:generate go run go.uber.org/mock/mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks
type TickScheduler interface {
	// Every invokes fn once per interval until the returned cancel func is called.
	// Implementations must dispatch fn serially with the rest of the event loop.
	// Calling cancel more than once is a no-op.
	Every(interval time.Duration, fn func()) (cancel func())
}
