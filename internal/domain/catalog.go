package domain

// CatalogView услуги компании выбранного типа, разделенные по категориям.
// Порядок сохраняется таким, каким его вернул источник каталога.
type CatalogView struct {
	Type   ServiceType
	Main   []Service
	Addons []Service
}

// FindMain ищет основную услугу по ID
func (v *CatalogView) FindMain(id int64) (*Service, bool) {
	for i := range v.Main {
		if v.Main[i].ID == id {
			return &v.Main[i], true
		}
	}
	return nil, false
}

// FindAddon ищет дополнительную услугу по ID
func (v *CatalogView) FindAddon(id int64) (*Service, bool) {
	for i := range v.Addons {
		if v.Addons[i].ID == id {
			return &v.Addons[i], true
		}
	}
	return nil, false
}

// ResolveMain определяет основную услугу: явный выбор имеет приоритет,
// иначе услуга выбирается автоматически, если в каталоге она единственная
func (v *CatalogView) ResolveMain(selectedID *int64) (*Service, bool) {
	if selectedID != nil {
		return v.FindMain(*selectedID)
	}
	if len(v.Main) == 1 {
		return &v.Main[0], true
	}
	return nil, false
}
