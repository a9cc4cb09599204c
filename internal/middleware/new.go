package middleware

import (
	"enrollment-assistant/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

func New(l log.Logger, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
	}
}
