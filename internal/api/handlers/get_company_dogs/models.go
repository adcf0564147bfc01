package get_company_dogs

import "github.com/m04kA/PawsCheckinService/internal/domain"

// DogResponse собака, доступная для выбора в оформлении
type DogResponse struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Breed    string     `json:"breed"`
	ImageURL *string    `json:"imageUrl,omitempty"`
	Owner    *OwnerInfo `json:"owner,omitempty"`
}

// OwnerInfo владелец собаки
type OwnerInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// CompanyDogsResponse собаки компании
type CompanyDogsResponse struct {
	CompanyID int64         `json:"companyId"`
	Dogs      []DogResponse `json:"dogs"`
}

func FromDomainDogs(companyID int64, dogs []domain.Dog) *CompanyDogsResponse {
	result := make([]DogResponse, 0, len(dogs))
	for _, dog := range dogs {
		resp := DogResponse{
			ID:       dog.ID,
			Name:     dog.Name,
			Breed:    dog.Breed,
			ImageURL: dog.ImageURL,
		}
		if dog.OwnerID != 0 || dog.OwnerName != "" {
			resp.Owner = &OwnerInfo{ID: dog.OwnerID, Name: dog.OwnerName, Lastname: dog.OwnerLastname}
		}
		result = append(result, resp)
	}
	return &CompanyDogsResponse{CompanyID: companyID, Dogs: result}
}
