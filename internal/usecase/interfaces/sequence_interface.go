package interfaces

import "context"

//go:generate mockgen -source=sequence_interface.go -destination=mocks/mock_sequence.go -package=mock_interfaces

// ISequenceGenerator hands out monotonically increasing numbers per named
// sequence. Next must be atomic: two callers never receive the same value.
type ISequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}
