package dashboard

import "errors"

var (
	// ErrInvalidFilter возвращается для неизвестного фильтра гостей
	ErrInvalidFilter = errors.New("dashboard: invalid guests filter")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("dashboard: invalid input data")

	// ErrUnauthorized возвращается, когда сервис бронирований отклонил токен сотрудника
	ErrUnauthorized = errors.New("dashboard: unauthorized")

	// ErrInternal возвращается при ошибках внешнего сервиса бронирований
	ErrInternal = errors.New("dashboard: internal error")
)
