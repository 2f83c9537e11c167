package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в справочнике
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись не может быть отменена по статусу
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrOutsideCancellationWindow возвращается, когда до начала записи
	// осталось меньше разрешённого окна самостоятельной отмены
	ErrOutsideCancellationWindow = errors.New("cancellation window has passed")

	// ErrCannotComplete возвращается, когда запись не может быть завершена по статусу
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
