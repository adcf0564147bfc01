package get_service_types

import "github.com/m04kA/PawsCheckinService/internal/domain"

// ServiceTypesResponse типы услуг, доступные для оформления заезда
type ServiceTypesResponse struct {
	CompanyID    int64    `json:"companyId"`
	ServiceTypes []string `json:"serviceTypes"`
}

func FromDomainServiceTypes(companyID int64, types []domain.ServiceType) *ServiceTypesResponse {
	result := make([]string, 0, len(types))
	for _, t := range types {
		result = append(result, string(t))
	}
	return &ServiceTypesResponse{CompanyID: companyID, ServiceTypes: result}
}
