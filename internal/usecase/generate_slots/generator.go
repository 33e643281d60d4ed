package generate_slots

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// IsTemplateApplicable проверяет, что шаблон целиком помещается в рабочие часы дня:
// templateStart >= open && templateEnd <= close.
// Шаблоны, переходящие через полночь (конец не позже начала), не применимы
func IsTemplateApplicable(template *domain.Template, businessHour *domain.BusinessHour) bool {
	open, close, err := businessHour.Window()
	if err != nil {
		return false
	}

	start, err := template.StartTime.Minutes()
	if err != nil {
		return false
	}
	end, err := template.EndTime.Minutes()
	if err != nil {
		return false
	}

	if end <= start {
		return false
	}

	return start >= open && end <= close
}

// BuildTemplateIndex группирует шаблоны по корту
func BuildTemplateIndex(templates []*domain.Template) map[int64][]*domain.Template {
	index := make(map[int64][]*domain.Template)
	for _, t := range templates {
		index[t.CourtID] = append(index[t.CourtID], t)
	}
	return index
}

// DateRange возвращает days последовательных календарных дней начиная со start
func DateRange(start types.Date, days int) []types.Date {
	dates := make([]types.Date, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDays(i))
	}
	return dates
}

// Plan входные данные одного прогона генерации
type Plan struct {
	Courts    []*domain.Court
	Hours     []*domain.BusinessHour
	Templates []*domain.Template
	Existing  []*domain.Slot
	Dates     []types.Date
}

// PlanResult слоты к вставке и статистика прогона
type PlanResult struct {
	Staged       []*domain.Slot
	SkippedDates int
}

// Expand раскладывает шаблоны по датам и кортам.
// Пропускает даты без рабочих часов и выходные, неприменимые шаблоны
// и ключи, которые уже есть в хранилище или были созданы ранее в этом прогоне
func (p Plan) Expand() PlanResult {
	hoursByDay := domain.BusinessHoursByDay(p.Hours)
	templatesByCourt := BuildTemplateIndex(p.Templates)

	seen := make(map[domain.SlotKey]struct{}, len(p.Existing))
	for _, s := range p.Existing {
		seen[s.Key()] = struct{}{}
	}

	var result PlanResult
	for _, date := range p.Dates {
		bh, ok := hoursByDay[date.Weekday()]
		if !ok || !bh.IsOpen() {
			result.SkippedDates++
			continue
		}

		for _, court := range p.Courts {
			for _, template := range templatesByCourt[court.ID] {
				if !IsTemplateApplicable(template, bh) {
					continue
				}

				slot := template.Instantiate(date)
				key := slot.Key()
				if _, exists := seen[key]; exists {
					continue
				}

				seen[key] = struct{}{}
				result.Staged = append(result.Staged, slot)
			}
		}
	}

	return result
}
