package handler

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ScopeFunc derives the context a use case call runs under
type ScopeFunc func(ctx context.Context) (context.Context, context.CancelFunc)

// Option configures a handler
type Option func(*requestScope)

// WithRequestScope bounds every use case call, typically by the database query timeout
func WithRequestScope(scope ScopeFunc) Option {
	return func(r *requestScope) {
		r.scope = scope
	}
}

type requestScope struct {
	scope ScopeFunc
}

func newRequestScope(opts []Option) requestScope {
	var r requestScope
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// requestContext returns the request's context narrowed by the configured scope.
// The caller must invoke the returned cancel.
func (r requestScope) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if r.scope == nil {
		return context.WithCancel(c.Request.Context())
	}
	return r.scope(c.Request.Context())
}
