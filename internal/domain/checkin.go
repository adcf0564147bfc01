package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CheckinState состояние сессии оформления заезда
type CheckinState string

const (
	StateServiceTypeSelected CheckinState = "service_type_selected"
	StateDogSelected         CheckinState = "dog_selected"
	StateDetailsEntered      CheckinState = "details_entered"
	StateSubmittable         CheckinState = "submittable"
	StateSubmitted           CheckinState = "submitted"
	StateCancelled           CheckinState = "cancelled"
)

// IsTerminal returns true if the session can no longer change
func (s CheckinState) IsTerminal() bool {
	return s == StateSubmitted || s == StateCancelled
}

// FlowStyle порядок шагов формы заезда. На расчет цены не влияет.
type FlowStyle string

const (
	// FlowInlineDog собака выбирается внутри формы деталей, в любом порядке
	FlowInlineDog FlowStyle = "inline_dog"
	// FlowDogStep собака выбирается отдельным шагом до ввода деталей
	FlowDogStep FlowStyle = "dog_step"
)

// IsValid проверяет, что вариант сценария известен
func (f FlowStyle) IsValid() bool {
	return f == FlowInlineDog || f == FlowDogStep
}

// Requirement недостающее условие для отправки бронирования
type Requirement string

const (
	RequirementDog         Requirement = "dog"
	RequirementMainService Requirement = "main_service"
	RequirementStayRange   Requirement = "stay_range"
)

// ReservationDraft черновик бронирования. Живет только в памяти до отправки.
type ReservationDraft struct {
	ServiceType       ServiceType
	DogID             *int64
	SelectedServiceID *int64
	Stay              StayRange
	SelectedAddonIDs  []int64 // В порядке выбора, без повторов
}

// HasAddon проверяет, выбрана ли дополнительная услуга
func (d *ReservationDraft) HasAddon(id int64) bool {
	return slices.Contains(d.SelectedAddonIDs, id)
}

// AddAddon добавляет услугу в конец списка выбора. Повторный выбор ничего не меняет.
func (d *ReservationDraft) AddAddon(id int64) bool {
	if d.HasAddon(id) {
		return false
	}
	d.SelectedAddonIDs = append(d.SelectedAddonIDs, id)
	return true
}

// RemoveAddon убирает услугу из выбора, сохраняя порядок остальных
func (d *ReservationDraft) RemoveAddon(id int64) bool {
	idx := slices.Index(d.SelectedAddonIDs, id)
	if idx < 0 {
		return false
	}
	d.SelectedAddonIDs = slices.Delete(d.SelectedAddonIDs, idx, idx+1)
	return true
}

// HasDetails returns true if any detail beyond the dog was entered
func (d *ReservationDraft) HasDetails() bool {
	return d.SelectedServiceID != nil || !d.Stay.IsEmpty() || len(d.SelectedAddonIDs) > 0
}

// Clone возвращает независимую копию черновика
func (d ReservationDraft) Clone() ReservationDraft {
	d.SelectedAddonIDs = slices.Clone(d.SelectedAddonIDs)
	return d
}

// CheckinSession сессия оформления заезда одним сотрудником
type CheckinSession struct {
	ID        uuid.UUID
	CompanyID int64
	Flow      FlowStyle
	State     CheckinState
	Draft     ReservationDraft
	Catalog   CatalogView

	Submitting    bool
	LastError     *string
	ReservationID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recompute пересчитывает состояние после изменения черновика.
// Завершенные сессии не меняются.
func (s *CheckinSession) Recompute(submittable bool) {
	if s.State.IsTerminal() {
		return
	}

	switch {
	case submittable:
		s.State = StateSubmittable
	case s.Draft.HasDetails():
		s.State = StateDetailsEntered
	case s.Draft.DogID != nil:
		s.State = StateDogSelected
	default:
		s.State = StateServiceTypeSelected
	}
}

// Clone возвращает копию сессии, которую можно отдавать наружу из хранилища
func (s *CheckinSession) Clone() *CheckinSession {
	c := *s
	c.Draft = s.Draft.Clone()
	c.Catalog.Main = slices.Clone(s.Catalog.Main)
	c.Catalog.Addons = slices.Clone(s.Catalog.Addons)
	return &c
}
