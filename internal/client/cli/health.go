package cli

import (
	"context"
	"fmt"
)

// Health runs the health check and remembers it for Retry.
func (a *App) Health(ctx context.Context) error {
	a.lastRequest = a.checkHealth
	return a.checkHealth(ctx)
}

// Retry re-runs the last remembered request.
func (a *App) Retry(ctx context.Context) error {
	if a.lastRequest == nil {
		fmt.Fprintln(a.out, "Nothing to retry yet")
		return nil
	}
	return a.lastRequest(ctx)
}

func (a *App) checkHealth(ctx context.Context) error {
	resp, err := a.api.Health(ctx)
	if err != nil {
		a.syncAfter(ctx, err)
		return err
	}

	status := resp.Status
	if status == "" {
		status = "unknown"
	}
	fmt.Fprintf(a.out, "Status: %s\n", status)
	if resp.Message != "" {
		fmt.Fprintf(a.out, "Message: %s\n", resp.Message)
	}
	if resp.Timestamp != "" {
		fmt.Fprintf(a.out, "Timestamp: %s\n", resp.Timestamp)
	}
	return nil
}
