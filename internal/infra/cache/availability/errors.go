package availability

import "errors"

var (
	// ErrCacheUnavailable возвращается при ошибках обращения к Redis
	ErrCacheUnavailable = errors.New("availability.cache: redis unavailable")
)
