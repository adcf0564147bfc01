package catalog

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог не удалось загрузить из источника
	ErrCatalogUnavailable = errors.New("catalog service: catalog unavailable")

	// ErrUnauthorized возвращается, когда источник каталога отклонил токен сотрудника
	ErrUnauthorized = errors.New("catalog service: unauthorized")

	// ErrInvalidServiceType возвращается для неизвестного типа услуги
	ErrInvalidServiceType = errors.New("catalog service: invalid service type")
)
