package update_checkin

import (
	"fmt"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

// UpdateCheckinRequest HTTP запрос на изменение деталей черновика
type UpdateCheckinRequest struct {
	DogID     *int64       `json:"dogId,omitempty"`
	ServiceID *int64       `json:"serviceId,omitempty"`
	Stay      *StayRequest `json:"stay,omitempty"`
}

// StayRequest даты проживания. Одинаковые даты означают только дату заезда.
type StayRequest struct {
	From *string `json:"from"` // YYYY-MM-DD или RFC3339
	To   *string `json:"to"`
}

// IsEmpty true, если запрос ничего не меняет
func (r *UpdateCheckinRequest) IsEmpty() bool {
	return r.DogID == nil && r.ServiceID == nil && r.Stay == nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCheckinRequest) ToServiceRequest() (*models.UpdateRequest, error) {
	req := &models.UpdateRequest{
		DogID:     r.DogID,
		ServiceID: r.ServiceID,
	}

	if r.Stay != nil {
		from, err := handlers.ParseDate(r.Stay.From)
		if err != nil {
			return nil, fmt.Errorf("stay.from: %w", err)
		}
		to, err := handlers.ParseDate(r.Stay.To)
		if err != nil {
			return nil, fmt.Errorf("stay.to: %w", err)
		}
		req.Stay = &models.StayInput{From: from, To: to}
	}

	return req, nil
}
