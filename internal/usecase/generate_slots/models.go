package generate_slots

import "github.com/m04kA/SMC-CourtService/pkg/types"

// Request модель запроса на генерацию слотов
type Request struct {
	StartDate      types.Date // Первый день диапазона
	DaysToGenerate int        // Количество дней, 0 = domain.DefaultDaysToGenerate
}

// Response результат генерации
type Response struct {
	StartDate      types.Date // Первый день диапазона
	EndDate        types.Date // Последний день диапазона (включительно)
	GeneratedCount int        // Реально вставленные слоты
	TotalExisting  int        // Слоты, существовавшие в диапазоне до генерации
	SkippedDates   int        // Даты без рабочих часов или выходные
}
