package catalog

import "errors"

var (
	// ErrCacheMiss возвращается, когда каталога компании нет в кэше
	ErrCacheMiss = errors.New("catalog.cache: miss")

	// ErrCache возвращается при ошибках redis
	ErrCache = errors.New("catalog.cache: redis error")

	// ErrDecode возвращается, когда значение в кэше не удалось разобрать
	ErrDecode = errors.New("catalog.cache: failed to decode value")
)
