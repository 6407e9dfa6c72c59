package notifier

import "context"

type contextKey string

const dryRunKey contextKey = "dryRun"

// WithDryRun marks ctx so notifiers log instead of sending.
func WithDryRun(ctx context.Context, dryRun bool) context.Context {
	return context.WithValue(ctx, dryRunKey, dryRun)
}

// IsDryRun is a helper to safely retrieve the dry_run flag from a context.
func IsDryRun(ctx context.Context) bool {
	dryRun, ok := ctx.Value(dryRunKey).(bool)
	return ok && dryRun
}
