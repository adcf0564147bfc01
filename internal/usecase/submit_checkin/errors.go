package submit_checkin

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_checkin: session not found")

	// ErrSessionClosed возвращается, когда сессия уже отправлена или отменена
	ErrSessionClosed = errors.New("submit_checkin: session is closed")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока первая не завершилась
	ErrSubmissionInFlight = errors.New("submit_checkin: submission already in flight")

	// ErrNotSubmittable возвращается, когда черновик не готов к отправке
	ErrNotSubmittable = errors.New("submit_checkin: draft is not submittable")

	// ErrCancelledDuringSubmit возвращается, когда сессию отменили во время отправки
	ErrCancelledDuringSubmit = errors.New("submit_checkin: session cancelled during submission")

	// ErrCatalogUnavailable возвращается, когда каталог не удалось обновить перед отправкой
	ErrCatalogUnavailable = errors.New("submit_checkin: catalog unavailable")

	// ErrUnauthorized возвращается, когда внешний сервис отклонил токен сотрудника
	ErrUnauthorized = errors.New("submit_checkin: unauthorized")

	// ErrReservationFailed возвращается, когда внешний сервис не создал бронирование.
	// Черновик сохранен, отправку можно повторить.
	ErrReservationFailed = errors.New("submit_checkin: reservation creation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_checkin: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_checkin: internal error")
)
