package pricing

import "github.com/m04kA/PawsCheckinService/internal/domain"

// ComputeUnits вычисляет множитель для основной услуги.
//
// Для NIGHTLY нужен полный диапазон, где дата выезда позже даты заезда.
// Ночи считаются по календарным дням, поэтому неполные сутки округляются вверх:
// заезд в 10:00 и выезд в 09:00 следующего дня дают одну ночь.
// Если диапазон неполный, возвращается ok=false, и расчет итога невозможен.
//
// Для остальных единиц цена берется один раз за бронирование, даты игнорируются.
func ComputeUnits(service *domain.Service, stay *domain.StayRange) (domain.Units, bool) {
	if !service.IsNightly() {
		return domain.Units{Multiplier: 1}, true
	}

	if stay == nil || !stay.IsComplete() {
		return domain.Units{}, false
	}

	nights := domain.CalendarDaysBetween(*stay.From, *stay.To)
	if nights < 1 {
		return domain.Units{}, false
	}

	return domain.Units{Multiplier: nights, Nights: &nights}, true
}
