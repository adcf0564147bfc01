package quote_pricing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_pricing: invalid input data")

	// ErrNoMainService возвращается, когда для типа услуги нет основной услуги
	ErrNoMainService = errors.New("quote_pricing: no main service for service type")

	// ErrServiceNotFound возвращается, когда указанной основной услуги нет в каталоге
	ErrServiceNotFound = errors.New("quote_pricing: main service not found")

	// ErrServiceRequired возвращается, когда основных услуг несколько и ни одна не указана
	ErrServiceRequired = errors.New("quote_pricing: main service must be selected")

	// ErrIncompleteStay возвращается, когда для ночной услуги не заданы обе даты
	ErrIncompleteStay = errors.New("quote_pricing: stay range is incomplete")

	// ErrUnauthorized возвращается, когда внешний сервис отклонил токен
	ErrUnauthorized = errors.New("quote_pricing: unauthorized")

	// ErrCatalogUnavailable возвращается, когда каталог не удалось загрузить
	ErrCatalogUnavailable = errors.New("quote_pricing: catalog unavailable")
)
