package create_booking

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда точка не найдена
	ErrPlaceNotFound = errors.New("create_booking: place not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	// (занят, не совпадает с сеткой слотов или нарушает буфер на дорогу)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
