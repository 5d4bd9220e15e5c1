package rules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда расписание не найдено
	ErrRuleNotFound = errors.New("availability rule not found")

	// ErrRuleAlreadyExists возвращается, когда у точки уже есть расписание
	ErrRuleAlreadyExists = errors.New("availability rule already exists for place")

	// ErrPlaceNotFound возвращается, когда точка не найдена
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
