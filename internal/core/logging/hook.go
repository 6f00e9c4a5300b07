package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the op and item_id context values onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if op := GetOperation(ctx); op != "" {
		e.Str("op", op)
	}

	if id := GetItemID(ctx); id != "" {
		e.Str("item_id", id)
	}
}
