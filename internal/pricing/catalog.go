package pricing

import "github.com/m04kA/PawsCheckinService/internal/domain"

// Partition отбирает услуги указанного типа и делит их на основные и дополнительные.
// Порядок источника не меняется.
func Partition(services []domain.Service, serviceType domain.ServiceType) domain.CatalogView {
	view := domain.CatalogView{
		Type:   serviceType,
		Main:   make([]domain.Service, 0),
		Addons: make([]domain.Service, 0),
	}

	for _, service := range services {
		if service.Type != serviceType {
			continue
		}
		switch service.Category {
		case domain.CategoryMain:
			view.Main = append(view.Main, service)
		case domain.CategoryAddon:
			view.Addons = append(view.Addons, service)
		}
	}

	return view
}

// AvailableServiceTypes возвращает типы, для которых есть хотя бы одна основная услуга,
// в порядке первого появления
func AvailableServiceTypes(services []domain.Service) []domain.ServiceType {
	seen := make(map[domain.ServiceType]struct{})
	types := make([]domain.ServiceType, 0)

	for _, service := range services {
		if !service.IsMain() {
			continue
		}
		if _, ok := seen[service.Type]; ok {
			continue
		}
		seen[service.Type] = struct{}{}
		types = append(types, service.Type)
	}

	return types
}
