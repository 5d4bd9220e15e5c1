package places

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда точка не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrPlaceHasBookings возвращается при попытке удалить точку с бронированиями
	ErrPlaceHasBookings = errors.New("place has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
