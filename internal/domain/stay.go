package domain

import "time"

// StayRange диапазон дат проживания.
// Валиден только когда заданы обе даты и To не раньше From.
type StayRange struct {
	From *time.Time
	To   *time.Time
}

// NewStayRange создает диапазон с учетом поведения календаря:
// повторный клик по той же дате означает новый выбор даты заезда, а не проживание на 0 ночей
func NewStayRange(from, to *time.Time) StayRange {
	if from != nil && to != nil && SameDay(*from, *to) {
		return StayRange{From: from}
	}
	return StayRange{From: from, To: to}
}

// IsComplete returns true if both dates are present and To is after From
func (r StayRange) IsComplete() bool {
	return r.From != nil && r.To != nil && r.To.After(*r.From)
}

// IsEmpty returns true if no dates are selected
func (r StayRange) IsEmpty() bool {
	return r.From == nil && r.To == nil
}

// SameDay проверяет, что две даты относятся к одному календарному дню.
// День b берется в часовом поясе a.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CalendarDaysBetween возвращает количество календарных дней между датами.
// Время суток и переходы на летнее время не влияют на результат.
// Обе даты берутся в часовом поясе from.
func CalendarDaysBetween(from, to time.Time) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.In(from.Location()).Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
