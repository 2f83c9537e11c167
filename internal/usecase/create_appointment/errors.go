package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена в справочнике
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrServiceNotOffered возвращается, когда мастер не оказывает услугу
	ErrServiceNotOffered = errors.New("create_appointment: service is not offered by this professional")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrNonWorkingDay возвращается, когда мастер не принимает в этот день недели
	ErrNonWorkingDay = errors.New("create_appointment: professional does not work on this day")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается в рабочее окно
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: start time is not aligned to the slot grid")

	// ErrLunchOverlap возвращается, когда слот пересекается с обеденным перерывом
	ErrLunchOverlap = errors.New("create_appointment: slot overlaps lunch break")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrTimeInPast возвращается при попытке записаться на уже прошедшее время
	ErrTimeInPast = errors.New("create_appointment: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
