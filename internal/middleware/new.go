package middleware

import (
	"ai-scheduler/config"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/log"
)

type Middleware struct {
	l            log.Logger
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter
	cors         corsPolicy
	limiter      *rateLimiter
}

// New creates the shared middleware set. enc may be nil when sessions are
// not configured; Auth then rejects every request.
func New(l log.Logger, cookieConfig config.CookieConfig, enc encrypter.Encrypter, allowedOrigins []string, requestsPerMin int) Middleware {
	return Middleware{
		l:            l,
		cookieConfig: cookieConfig,
		encrypter:    enc,
		cors:         newCORSPolicy(allowedOrigins),
		limiter:      newRateLimiter(requestsPerMin),
	}
}
