package health

import "context"

// StorePinger checks graph store reachability.
type StorePinger interface {
	Ping(ctx context.Context) error
}
