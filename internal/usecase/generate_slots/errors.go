package generate_slots

import "errors"

var (
	// ErrStartDateRequired возвращается, когда не указана дата начала генерации
	ErrStartDateRequired = errors.New("generate_slots: startDate is required")

	// ErrInvalidDaysToGenerate возвращается, когда количество дней вне допустимого диапазона
	ErrInvalidDaysToGenerate = errors.New("generate_slots: daysToGenerate is out of range")

	// ErrNothingToGenerate возвращается, когда нет кортов, рабочих часов или шаблонов
	ErrNothingToGenerate = errors.New("generate_slots: nothing to generate")

	// ErrNoActiveCourts нет ни одного активного корта
	ErrNoActiveCourts = errors.New("generate_slots: no active courts")

	// ErrNoBusinessHours рабочие часы не настроены
	ErrNoBusinessHours = errors.New("generate_slots: no business hours")

	// ErrNoTemplates нет ни одного шаблона слота
	ErrNoTemplates = errors.New("generate_slots: no slot templates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
