package context

import "context"

// KeyUserID is the key for storing the authenticated user's id in context.
const KeyUserID ContextKey = "user_id"

// WithUserID returns a new context carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserID extracts the authenticated user's id from context.Context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(KeyUserID).(int64)

	return id, ok
}
