package rule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда расписание не найдено
	ErrRuleNotFound = errors.New("rule.repository: availability rule not found")

	// ErrRuleAlreadyExists возвращается, когда у точки уже есть расписание
	ErrRuleAlreadyExists = errors.New("rule.repository: availability rule already exists for place")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rule.repository: failed to scan row")
)
