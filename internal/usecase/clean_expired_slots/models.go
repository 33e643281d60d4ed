package clean_expired_slots

import "github.com/m04kA/SMC-CourtService/pkg/types"

// Response результат очистки
type Response struct {
	DeletedCount int64
	Threshold    types.Date
}
