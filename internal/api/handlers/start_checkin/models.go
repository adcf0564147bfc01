package start_checkin

import "github.com/m04kA/PawsCheckinService/internal/service/checkin/models"

// StartCheckinRequest HTTP запрос на начало оформления заезда
type StartCheckinRequest struct {
	ServiceType string `json:"serviceType"`
	Flow        string `json:"flow,omitempty"` // inline_dog | dog_step
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *StartCheckinRequest) ToServiceRequest(companyID int64) *models.StartRequest {
	return &models.StartRequest{
		CompanyID:   companyID,
		ServiceType: r.ServiceType,
		Flow:        r.Flow,
	}
}
