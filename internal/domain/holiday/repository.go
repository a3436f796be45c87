package holiday

import (
	"context"
	"time"
)

type Repository interface {
	// ListBetween returns holidays with from <= date <= to.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
