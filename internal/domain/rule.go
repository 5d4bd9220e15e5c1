package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Wong-WS/swim-scheduler/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при неизвестном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTimeRange возвращается, когда startTime не раньше endTime
	ErrInvalidTimeRange = errors.New("startTime must be before endTime")

	// ErrDuplicateWeekday возвращается, когда день недели встречается в расписании дважды
	ErrDuplicateWeekday = errors.New("duplicate weekday in schedule")
)

// Weekday нормализованный (lowercase) идентификатор дня недели.
// Нормализация выполняется один раз на границе ввода данных (ParseWeekday),
// а не при каждом поиске правила.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// weekdayOrdinals соответствие дням недели time.Weekday (Sunday=0 ... Saturday=6)
var weekdayOrdinals = map[Weekday]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// ParseWeekday нормализует строку в Weekday без учёта регистра
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := weekdayOrdinals[day]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	return day, nil
}

// Matches проверяет соответствие дню недели календарной даты.
// Регистр не учитывается: данные, записанные до нормализации на границе
// ввода, всё равно должны сопоставляться корректно.
func (d Weekday) Matches(wd time.Weekday) bool {
	ordinal, ok := weekdayOrdinals[Weekday(strings.ToLower(string(d)))]
	return ok && ordinal == wd
}

// WeeklyRule окно доступности на один день недели:
// тренер принимает на точке с StartTime до EndTime (местное время, минутная точность)
type WeeklyRule struct {
	Day       Weekday          `json:"day"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Validate проверяет корректность окна: валидные день и времена, startTime < endTime
func (r *WeeklyRule) Validate() error {
	if _, err := ParseWeekday(string(r.Day)); err != nil {
		return err
	}
	if err := r.StartTime.Validate(); err != nil {
		return err
	}
	if err := r.EndTime.Validate(); err != nil {
		return err
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, r.StartTime, r.EndTime)
	}
	return nil
}

// WeeklySchedule недельное расписание точки: не больше одного окна на день недели.
// Хранится в БД одной JSONB колонкой - расписание всегда читается и пишется целиком.
type WeeklySchedule []WeeklyRule

// ForWeekday возвращает окно для дня недели или nil, если день отсутствует
// (отсутствие окна означает, что точка в этот день закрыта)
func (s WeeklySchedule) ForWeekday(wd time.Weekday) *WeeklyRule {
	for i := range s {
		if s[i].Day.Matches(wd) {
			return &s[i]
		}
	}
	return nil
}

// Validate проверяет каждое окно и отсутствие дублей дней недели
func (s WeeklySchedule) Validate() error {
	seen := make(map[Weekday]struct{}, len(s))
	for i := range s {
		if err := s[i].Validate(); err != nil {
			return err
		}
		day := Weekday(strings.ToLower(string(s[i].Day)))
		if _, ok := seen[day]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateWeekday, s[i].Day)
		}
		seen[day] = struct{}{}
	}
	return nil
}

// Value реализует driver.Valuer для записи расписания в JSONB
func (s WeeklySchedule) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan реализует sql.Scanner для чтения расписания из JSONB
func (s *WeeklySchedule) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("weekly schedule: unsupported scan type %T", src)
	}
}

// AvailabilityRule недельное расписание доступности одной точки
type AvailabilityRule struct {
	ID      string
	PlaceID string
	Rules   WeeklySchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}
