package submit_checkin

import (
	"github.com/google/uuid"

	checkinModels "github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

// Request запрос на отправку черновика
type Request struct {
	SessionID uuid.UUID
}

// Response созданное бронирование
type Response struct {
	CheckinID       string                       `json:"checkinId"`
	ReservationID   int64                        `json:"reservationId"`
	Status          string                       `json:"status"`
	PaymentStatus   string                       `json:"paymentStatus"`
	Items           []checkinModels.ItemResponse `json:"items"`
	Total           string                       `json:"total"`
	Nights          *int                         `json:"nights,omitempty"`
	CheckIn         *string                      `json:"checkIn"`
	CheckOut        *string                      `json:"checkOut"`
	SkippedAddonIDs []int64                      `json:"skippedAddonIds"`
}
