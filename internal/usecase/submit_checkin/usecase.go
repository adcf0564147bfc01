package submit_checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	checkinRepo "github.com/m04kA/PawsCheckinService/internal/infra/storage/checkin"
	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
	checkinModels "github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

// UseCase use case для отправки черновика заезда во внешний сервис бронирований
type UseCase struct {
	sessions     SessionRepository
	catalog      CatalogRefresher
	creator      ReservationCreator
	composer     *pricing.Composer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	catalog CatalogRefresher,
	creator ReservationCreator,
	composer *pricing.Composer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		catalog:      catalog,
		creator:      creator,
		composer:     composer,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет отправку.
// Одновременно для сессии выполняется не больше одной отправки.
// При ошибке внешнего сервиса сессия возвращается к вводу деталей с сохраненным выбором.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitCheckin: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitCheckin: session id=%s", req.SessionID)

	// 2. Захватываем сессию: помечаем отправку и снимаем копию черновика
	session, err := uc.sessions.Update(ctx, req.SessionID, func(s *domain.CheckinSession) error {
		if s.State.IsTerminal() {
			return ErrSessionClosed
		}
		if s.Submitting {
			return ErrSubmissionInFlight
		}
		eval := pricing.Evaluate(&s.Catalog, &s.Draft, uc.composer)
		if !eval.Submittable() {
			return fmt.Errorf("%w: missing %v", ErrNotSubmittable, eval.Missing)
		}
		s.Submitting = true
		return nil
	})
	if err != nil {
		return nil, uc.mapClaimError(req, err)
	}

	// 3. Обновляем каталог: цены и состав услуг могли измениться
	services, err := uc.catalog.Refresh(ctx, session.CompanyID)
	if err != nil {
		uc.logger.Error("SubmitCheckin: failed to refresh catalog for company=%d: %v", session.CompanyID, err)
		if cancelled := uc.release(ctx, session, nil, "catalog unavailable"); cancelled {
			return nil, ErrCancelledDuringSubmit
		}
		if errors.Is(err, catalogService.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	view := pricing.Partition(services, session.Draft.ServiceType)

	// 4. Пересчитываем черновик на актуальном каталоге
	eval := pricing.Evaluate(&view, &session.Draft, uc.composer)
	if len(eval.SkippedAddonIDs) > 0 {
		uc.logger.Warn("SubmitCheckin: session id=%s: skipping stale addon ids %v",
			session.ID, eval.SkippedAddonIDs)
	}
	if !eval.Submittable() {
		uc.logger.Warn("SubmitCheckin: session id=%s is not submittable on refreshed catalog, missing %v",
			session.ID, eval.Missing)
		if cancelled := uc.release(ctx, session, &view, "selected service is no longer available"); cancelled {
			return nil, ErrCancelledDuringSubmit
		}
		return nil, fmt.Errorf("%w: missing %v", ErrNotSubmittable, eval.Missing)
	}

	// 5. Собираем запрос на создание бронирования
	reservationReq := buildReservationRequest(session, &eval, uc.timeProvider.Now())

	// 6. Создаем бронирование одним запросом
	reservation, err := uc.creator.CreateReservation(ctx, reservationReq)
	if err != nil {
		uc.logger.Error("SubmitCheckin: failed to create reservation for session id=%s: %v", session.ID, err)
		uc.metrics.CheckinEvent(metrics.EventCheckinSubmitFailed)
		if cancelled := uc.release(ctx, session, &view, err.Error()); cancelled {
			return nil, ErrCancelledDuringSubmit
		}
		if errors.Is(err, petapi.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrReservationFailed, err)
	}

	// 7. Фиксируем результат, если сессию не отменили за время запроса
	cancelled := false
	_, err = uc.sessions.Update(ctx, session.ID, func(s *domain.CheckinSession) error {
		s.Submitting = false
		if s.State == domain.StateCancelled {
			cancelled = true
			return nil
		}
		s.State = domain.StateSubmitted
		s.Draft = domain.ReservationDraft{ServiceType: s.Draft.ServiceType}
		s.Catalog = view
		s.LastError = nil
		s.ReservationID = &reservation.ID
		s.UpdatedAt = uc.timeProvider.Now()
		return nil
	})
	if err != nil {
		// Сессия могла быть удалена, бронирование при этом уже создано
		uc.logger.Error("SubmitCheckin: failed to finalize session id=%s after reservation id=%d: %v",
			session.ID, reservation.ID, err)
	}
	if cancelled {
		uc.logger.Warn("SubmitCheckin: session id=%s was cancelled, ignoring reservation id=%d",
			session.ID, reservation.ID)
		return nil, ErrCancelledDuringSubmit
	}

	uc.metrics.CheckinEvent(metrics.EventCheckinSubmitted)
	uc.metrics.ReservationSubmitted(eval.Result.Total.InexactFloat64())

	uc.logger.Info("SubmitCheckin: created reservation id=%d for session id=%s, total=%s",
		reservation.ID, session.ID, eval.Result.Total.StringFixed(domain.MoneyPlaces))

	return buildResponse(session, reservation, reservationReq, &eval), nil
}

// release снимает отметку отправки и возвращает сессию к вводу деталей.
// Возвращает true, если сессию отменили, пока шла отправка.
func (uc *UseCase) release(ctx context.Context, session *domain.CheckinSession, view *domain.CatalogView, reason string) bool {
	cancelled := false
	_, err := uc.sessions.Update(ctx, session.ID, func(s *domain.CheckinSession) error {
		s.Submitting = false
		if s.State.IsTerminal() {
			cancelled = s.State == domain.StateCancelled
			return nil
		}
		if view != nil {
			s.Catalog = *view
		}
		s.State = domain.StateDetailsEntered
		s.LastError = &reason
		s.UpdatedAt = uc.timeProvider.Now()
		return nil
	})
	if err != nil {
		uc.logger.Error("SubmitCheckin: failed to release session id=%s: %v", session.ID, err)
	}
	return cancelled
}

func (uc *UseCase) mapClaimError(req *Request, err error) error {
	switch {
	case errors.Is(err, checkinRepo.ErrSessionNotFound):
		uc.logger.Warn("SubmitCheckin: session id=%s not found", req.SessionID)
		return ErrSessionNotFound
	case errors.Is(err, ErrSessionClosed),
		errors.Is(err, ErrSubmissionInFlight),
		errors.Is(err, ErrNotSubmittable):
		uc.logger.Warn("SubmitCheckin: session id=%s rejected: %v", req.SessionID, err)
		return err
	default:
		uc.logger.Error("SubmitCheckin: repository error for session id=%s: %v", req.SessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// buildReservationRequest собирает запрос к внешнему сервису.
// Для ночной услуги даты берутся из проживания, для остальных заезд отмечается текущим временем.
func buildReservationRequest(session *domain.CheckinSession, eval *pricing.Evaluation, now time.Time) *domain.ReservationRequest {
	req := &domain.ReservationRequest{
		DogID:     *session.Draft.DogID,
		CompanyID: session.CompanyID,
		Items:     eval.Result.Items,
	}

	if eval.Main.IsNightly() {
		req.CheckIn = session.Draft.Stay.From
		req.CheckOut = session.Draft.Stay.To
	} else {
		req.CheckIn = &now
	}

	return req
}

func buildResponse(
	session *domain.CheckinSession,
	reservation *domain.Reservation,
	req *domain.ReservationRequest,
	eval *pricing.Evaluation,
) *Response {
	pricingResp := checkinModels.FromPricingResult(eval.Result)

	return &Response{
		CheckinID:       session.ID.String(),
		ReservationID:   reservation.ID,
		Status:          string(reservation.Status),
		PaymentStatus:   string(reservation.PaymentStatus),
		Items:           pricingResp.Items,
		Total:           pricingResp.Total,
		Nights:          pricingResp.Nights,
		CheckIn:         formatTime(req.CheckIn),
		CheckOut:        formatTime(req.CheckOut),
		SkippedAddonIDs: append(make([]int64, 0), eval.SkippedAddonIDs...),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(domain.DateTimeFormat)
	return &s
}
