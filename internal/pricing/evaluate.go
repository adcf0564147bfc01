package pricing

import "github.com/m04kA/PawsCheckinService/internal/domain"

// Evaluation состояние расчета черновика на текущем каталоге
type Evaluation struct {
	Main            *domain.Service
	Units           domain.Units
	Result          *domain.PricingResult // nil, пока не выбрана основная услуга или не заданы даты
	Missing         []domain.Requirement
	SkippedAddonIDs []int64
}

// Submittable returns true if nothing blocks the submission
func (e *Evaluation) Submittable() bool {
	return len(e.Missing) == 0 && e.Result != nil
}

// Evaluate рассчитывает черновик: определяет основную услугу, множитель и позиции,
// собирает список недостающих условий для отправки
func Evaluate(view *domain.CatalogView, draft *domain.ReservationDraft, composer *Composer) Evaluation {
	eval := Evaluation{
		Missing:         make([]domain.Requirement, 0),
		SkippedAddonIDs: StaleAddonIDs(view.Addons, draft.SelectedAddonIDs),
	}

	if draft.DogID == nil {
		eval.Missing = append(eval.Missing, domain.RequirementDog)
	}

	main, ok := view.ResolveMain(draft.SelectedServiceID)
	if !ok {
		eval.Missing = append(eval.Missing, domain.RequirementMainService)
		return eval
	}
	eval.Main = main

	stay := draft.Stay
	units, ok := ComputeUnits(main, &stay)
	if !ok {
		eval.Missing = append(eval.Missing, domain.RequirementStayRange)
		return eval
	}
	eval.Units = units

	result := composer.Compose(main, view.Addons, draft.SelectedAddonIDs, units)
	eval.Result = &result

	return eval
}
