package place

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда точка не найдена
	ErrPlaceNotFound = errors.New("place.repository: place not found")

	// ErrPlaceHasBookings возвращается при попытке удалить точку с бронированиями
	ErrPlaceHasBookings = errors.New("place.repository: place has bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("place.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("place.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("place.repository: failed to scan row")
)
