package driven

import (
	"context"

	"github.com/jatinnirwann/portfolio/internal/domain/model"
)

// ExclusionSource loads the set of repository names hidden from the
// portfolio. Implementations read their backing store on every call and
// return an empty set rather than an error when it is unavailable.
type ExclusionSource interface {
	Load(ctx context.Context) model.ExclusionSet
}
