package reminder

import (
	"context"

	dt "assistant/internal/core/domain/datetime"
)

// NaturalTimeResolver turns a free-text phrase plus the current local
// instant into a future due instant in storage form. A phrase that cannot
// be resolved returns an error wrapping ErrNaturalTimeParsing.
type NaturalTimeResolver interface {
	Resolve(ctx context.Context, phrase string, now dt.Local) (dt.Naive, error)
}
