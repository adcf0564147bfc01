package petapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, транспорт)
	ErrInternal = errors.New("petapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("petapi client: invalid response")

	// ErrUnauthorized возвращается, когда API отклонил токен
	ErrUnauthorized = errors.New("petapi client: unauthorized")

	// ErrRemote возвращается, когда API ответил ошибками GraphQL
	ErrRemote = errors.New("petapi client: remote error")
)
