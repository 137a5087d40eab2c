package watercraft

import "errors"

var (
	// ErrWatercraftNotFound возвращается, когда тип плавсредства не найден
	ErrWatercraftNotFound = errors.New("watercraft.repository: watercraft not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("watercraft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("watercraft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("watercraft.repository: failed to scan row")
)
