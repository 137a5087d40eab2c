package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда для даты нет отдельного расписания
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrInvalidWindow возвращается, когда сохранённое окно не выровнено по сетке слотов
	ErrInvalidWindow = errors.New("schedule.repository: invalid operating window")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
