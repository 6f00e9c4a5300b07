package logging

import "context"

type contextKey string

const (
	operationKey contextKey = "op"
	itemIDKey    contextKey = "item_id"
)

// WithOperation tags the context with the lifecycle operation being run.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// WithItemID adds the id of the item being operated on to the context.
func WithItemID(ctx context.Context, itemID string) context.Context {
	return context.WithValue(ctx, itemIDKey, itemID)
}

// GetOperation retrieves the operation name from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// GetItemID retrieves the item id from the context.
// Returns empty string if not present.
func GetItemID(ctx context.Context) string {
	if id, ok := ctx.Value(itemIDKey).(string); ok {
		return id
	}
	return ""
}
