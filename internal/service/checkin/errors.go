package checkin

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("checkin: session not found")

	// ErrSessionClosed возвращается при изменении отправленной или отмененной сессии
	ErrSessionClosed = errors.New("checkin: session is closed")

	// ErrSubmissionInFlight возвращается при изменении сессии во время отправки
	ErrSubmissionInFlight = errors.New("checkin: submission in flight")

	// ErrNoMainService возвращается, когда для типа услуги нет ни одной основной услуги
	ErrNoMainService = errors.New("checkin: no main service for service type")

	// ErrServiceNotFound возвращается, когда основной услуги нет в каталоге сессии
	ErrServiceNotFound = errors.New("checkin: main service not found")

	// ErrAddonNotFound возвращается, когда дополнительной услуги нет в каталоге сессии
	ErrAddonNotFound = errors.New("checkin: addon not found")

	// ErrDogRequired возвращается, когда детали вводятся до выбора собаки в сценарии dog_step
	ErrDogRequired = errors.New("checkin: dog must be selected first")

	// ErrDogNotFound возвращается, когда собака не зарегистрирована в компании сессии
	ErrDogNotFound = errors.New("checkin: dog not found")

	// ErrDogsUnavailable возвращается, когда реестр собак не удалось загрузить
	ErrDogsUnavailable = errors.New("checkin: dog registry unavailable")

	// ErrInvalidStay возвращается, когда дата выезда раньше даты заезда
	ErrInvalidStay = errors.New("checkin: check-out is before check-in")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkin: invalid input data")

	// ErrUnauthorized возвращается, когда внешний сервис отклонил токен сотрудника
	ErrUnauthorized = errors.New("checkin: unauthorized")

	// ErrCatalogUnavailable возвращается, когда каталог компании не удалось загрузить
	ErrCatalogUnavailable = errors.New("checkin: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("checkin: internal error")
)
