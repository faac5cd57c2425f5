// Package observes initialises error reporting. Only Sentry is supported;
// without a DSN every function here is a no-op.
package observes

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/microservicio/config"
)

// NewSentry registers the global sentry client. It returns a flush
// function to call on shutdown.
func NewSentry(cfg *config.Sentry, name, release string) (func(), error) {
	// if not exist sentry config, skip initialization
	if !cfg.Enabled() {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Dsn,
		AttachStacktrace: true,
		Debug:            cfg.Debug,
		SampleRate:       cfg.SampleRate,
		ServerName:       name,
		Release:          release,
		Environment:      cfg.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError reports err with the request context attached, when a
// sentry client is registered.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}
