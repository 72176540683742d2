// Package usage persists per-request accounting events. Recording is
// fire-and-forget from the engine's perspective: a failed insert is
// logged by the caller and never affects the research result.
package usage

import (
	"context"

	"github.com/lexafrica/lexsearch/internal/research"
)

// NoopRecorder discards events. Used when no usage store is configured.
type NoopRecorder struct{}

var _ research.UsageRecorder = (*NoopRecorder)(nil)

// Record implements research.UsageRecorder.
func (NoopRecorder) Record(context.Context, research.UsageEvent) error {
	return nil
}
