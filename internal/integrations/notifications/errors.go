package notifications

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось отправить в брокер
	ErrPublish = errors.New("notifications: publish failed")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("notifications: marshal event failed")
)
