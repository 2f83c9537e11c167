package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// Format формат времени "HH:MM"
	Format = "15:04"

	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrDayOverflow возвращается, когда арифметика выходит за пределы суток
	// Сервисы не переходят через полночь, поэтому переполнение — это ошибка вызывающего
	ErrDayOverflow = errors.New("types: time arithmetic overflows the day")
)

// TimeString время дня в формате "HH:MM" без даты и часового пояса.
// Используется для расписаний и слотов: хранение в БД, JSON и арифметика
// выполняются в минутах от начала суток.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Format))
}

// NewTimeStringFromString парсит строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// FromMinutes создает TimeString из количества минут от начала суток
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", ErrDayOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(Format, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от начала суток.
// Для невалидного значения возвращает ошибку.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(Format, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через указанное количество минут.
// Переход через полночь считается ошибкой (ErrDayOverflow).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate совмещает время с календарной датой в её локации
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location()), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner.
// Postgres отдает колонку time как "HH:MM:SS" - секунды отбрасываем.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > len(Format) {
		s = s[:len(Format)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
