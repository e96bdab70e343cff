package transport

import "golang.org/x/time/rate"

// limiterFor builds a token bucket allowing rps requests per second with
// a burst of at least one. A non-positive rps disables limiting and
// returns nil.
func limiterFor(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
