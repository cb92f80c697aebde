package mock

import (
	"context"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of textcompare.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, a textcompare.Alignment) error
}

func (v *Viewer) View(ctx context.Context, a textcompare.Alignment) error {
	return v.ViewFn(ctx, a)
}
