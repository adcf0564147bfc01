package quote_pricing

import (
	"time"

	checkinModels "github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

// Request запрос расчета вне сессии заезда
type Request struct {
	CompanyID   int64
	ServiceType string
	ServiceID   *int64     // Не обязателен, если основная услуга единственная
	From        *time.Time // Только для NIGHTLY
	To          *time.Time
	AddonIDs    []int64 // В порядке выбора
}

// Response результат расчета
type Response struct {
	ServiceID       int64                        `json:"serviceId"`
	Items           []checkinModels.ItemResponse `json:"items"`
	Total           string                       `json:"total"`
	Nights          *int                         `json:"nights,omitempty"`
	SkippedAddonIDs []int64                      `json:"skippedAddonIds"`
}
