package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	checkinRepo "github.com/m04kA/PawsCheckinService/internal/infra/storage/checkin"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

// Service сервис сессий оформления заезда.
// Каждая сессия принадлежит одному сотруднику, черновик хранится только в памяти.
type Service struct {
	sessions     SessionRepository
	catalog      CatalogProvider
	dogs         DogDirectory
	composer     *pricing.Composer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заезда
func NewService(
	sessions SessionRepository,
	catalog CatalogProvider,
	dogs DogDirectory,
	composer *pricing.Composer,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		catalog:      catalog,
		dogs:         dogs,
		composer:     composer,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start начинает оформление заезда для выбранного типа услуги.
// Если у типа нет ни одной основной услуги, оформление невозможно.
func (s *Service) Start(ctx context.Context, req *models.StartRequest) (*models.CheckinResponse, error) {
	s.logger.Info("Start: company=%d, serviceType=%s, flow=%s", req.CompanyID, req.ServiceType, req.Flow)

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}

	serviceType := domain.ServiceType(req.ServiceType)
	if !serviceType.IsValid() {
		s.logger.Warn("Start: invalid service type=%s", req.ServiceType)
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	flow := domain.FlowInlineDog
	if req.Flow != "" {
		flow = domain.FlowStyle(req.Flow)
		if !flow.IsValid() {
			s.logger.Warn("Start: invalid flow=%s", req.Flow)
			return nil, fmt.Errorf("%w: unknown flow %q", ErrInvalidInput, req.Flow)
		}
	}

	view, err := s.catalog.View(ctx, req.CompanyID, serviceType)
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidServiceType) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if errors.Is(err, catalogService.ErrUnauthorized) {
			s.logger.Warn("Start: catalog rejected token for company=%d", req.CompanyID)
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		s.logger.Error("Start: failed to load catalog for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if len(view.Main) == 0 {
		s.logger.Warn("Start: company=%d has no main service of type=%s", req.CompanyID, serviceType)
		return nil, ErrNoMainService
	}

	now := s.timeProvider.Now()
	session := &domain.CheckinSession{
		ID:        uuid.New(),
		CompanyID: req.CompanyID,
		Flow:      flow,
		State:     domain.StateServiceTypeSelected,
		Draft:     domain.ReservationDraft{ServiceType: serviceType, SelectedAddonIDs: make([]int64, 0)},
		Catalog:   view,
		CreatedAt: now,
		UpdatedAt: now,
	}

	eval := pricing.Evaluate(&session.Catalog, &session.Draft, s.composer)
	session.Recompute(eval.Submittable())

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("Start: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	s.metrics.CheckinEvent(metrics.EventCheckinStarted)
	s.logger.Info("Start: started session id=%s with %d main and %d addon services",
		session.ID, len(view.Main), len(view.Addons))

	return models.FromDomainSession(session, &eval), nil
}

// Get возвращает сессию с предварительным расчетом
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.CheckinResponse, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, s.mapRepositoryError("Get", id, err)
	}
	return s.respond(session), nil
}

// Update изменяет собаку, основную услугу и даты проживания.
// Собака применяется первой, поэтому в сценарии dog_step можно передать ее вместе с деталями.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateRequest) (*models.CheckinResponse, error) {
	if req.DogID != nil {
		if err := s.verifyDog(ctx, "Update", id, *req.DogID); err != nil {
			return nil, err
		}
	}
	return s.mutate(ctx, "Update", id, func(session *domain.CheckinSession) error {
		if req.DogID != nil {
			if err := selectDog(session, *req.DogID); err != nil {
				return err
			}
		}
		if req.ServiceID != nil {
			if err := selectService(session, *req.ServiceID); err != nil {
				return err
			}
		}
		if req.Stay != nil {
			if err := setStay(session, req.Stay.From, req.Stay.To); err != nil {
				return err
			}
		}
		return nil
	})
}

// SelectDog выбирает собаку
func (s *Service) SelectDog(ctx context.Context, id uuid.UUID, dogID int64) (*models.CheckinResponse, error) {
	if err := s.verifyDog(ctx, "SelectDog", id, dogID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "SelectDog", id, func(session *domain.CheckinSession) error {
		return selectDog(session, dogID)
	})
}

// Dogs возвращает собак компании для выбора в оформлении
func (s *Service) Dogs(ctx context.Context, companyID int64) ([]domain.Dog, error) {
	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	return s.companyDogs(ctx, "Dogs", companyID)
}

// SelectService выбирает основную услугу из каталога сессии
func (s *Service) SelectService(ctx context.Context, id uuid.UUID, serviceID int64) (*models.CheckinResponse, error) {
	return s.mutate(ctx, "SelectService", id, func(session *domain.CheckinSession) error {
		return selectService(session, serviceID)
	})
}

// SetStay задает даты проживания. Одна и та же дата дважды означает только дату заезда.
func (s *Service) SetStay(ctx context.Context, id uuid.UUID, from, to *time.Time) (*models.CheckinResponse, error) {
	return s.mutate(ctx, "SetStay", id, func(session *domain.CheckinSession) error {
		return setStay(session, from, to)
	})
}

// SelectAddon добавляет дополнительную услугу в конец выбора
func (s *Service) SelectAddon(ctx context.Context, id uuid.UUID, serviceID int64) (*models.CheckinResponse, error) {
	return s.mutate(ctx, "SelectAddon", id, func(session *domain.CheckinSession) error {
		if err := requireDog(session); err != nil {
			return err
		}
		if _, ok := session.Catalog.FindAddon(serviceID); !ok {
			return fmt.Errorf("%w: id=%d", ErrAddonNotFound, serviceID)
		}
		session.Draft.AddAddon(serviceID)
		return nil
	})
}

// DeselectAddon убирает дополнительную услугу из выбора
func (s *Service) DeselectAddon(ctx context.Context, id uuid.UUID, serviceID int64) (*models.CheckinResponse, error) {
	return s.mutate(ctx, "DeselectAddon", id, func(session *domain.CheckinSession) error {
		if err := requireDog(session); err != nil {
			return err
		}
		session.Draft.RemoveAddon(serviceID)
		return nil
	})
}

// Cancel отменяет оформление и отбрасывает черновик.
// Повторная отмена ничего не делает. Результат отправки, которая еще идет, будет проигнорирован.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Cancel: cancelling session id=%s", id)

	cancelled := false
	_, err := s.sessions.Update(ctx, id, func(session *domain.CheckinSession) error {
		switch session.State {
		case domain.StateCancelled:
			return nil
		case domain.StateSubmitted:
			return ErrSessionClosed
		}

		session.State = domain.StateCancelled
		session.Draft = domain.ReservationDraft{ServiceType: session.Draft.ServiceType}
		session.LastError = nil
		session.UpdatedAt = s.timeProvider.Now()
		cancelled = true
		return nil
	})
	if err != nil {
		return s.mapRepositoryError("Cancel", id, err)
	}

	if cancelled {
		s.metrics.CheckinEvent(metrics.EventCheckinCancelled)
		s.logger.Info("Cancel: session id=%s cancelled", id)
	}
	return nil
}

// mutate применяет изменение к открытой сессии и пересчитывает ее состояние
func (s *Service) mutate(
	ctx context.Context,
	op string,
	id uuid.UUID,
	fn func(session *domain.CheckinSession) error,
) (*models.CheckinResponse, error) {
	s.logger.Info("%s: session id=%s", op, id)

	session, err := s.sessions.Update(ctx, id, func(session *domain.CheckinSession) error {
		if session.State.IsTerminal() {
			return ErrSessionClosed
		}
		if session.Submitting {
			return ErrSubmissionInFlight
		}
		if err := fn(session); err != nil {
			return err
		}

		eval := pricing.Evaluate(&session.Catalog, &session.Draft, s.composer)
		session.Recompute(eval.Submittable())
		session.LastError = nil
		session.UpdatedAt = s.timeProvider.Now()
		return nil
	})
	if err != nil {
		return nil, s.mapRepositoryError(op, id, err)
	}

	s.logger.Info("%s: session id=%s is now %s", op, id, session.State)
	return s.respond(session), nil
}

// respond считает предварительный расчет для открытой сессии
func (s *Service) respond(session *domain.CheckinSession) *models.CheckinResponse {
	if session.State.IsTerminal() {
		return models.FromDomainSession(session, nil)
	}

	eval := pricing.Evaluate(&session.Catalog, &session.Draft, s.composer)
	if len(eval.SkippedAddonIDs) > 0 {
		s.logger.Warn("session id=%s: skipped stale addon ids %v", session.ID, eval.SkippedAddonIDs)
	}
	return models.FromDomainSession(session, &eval)
}

// verifyDog проверяет, что собака зарегистрирована в компании сессии.
// Реестр запрашивается вне блокировки сессии, закрытую сессию отклонит mutate.
func (s *Service) verifyDog(ctx context.Context, op string, id uuid.UUID, dogID int64) error {
	if dogID <= 0 {
		return fmt.Errorf("%w: dogId must be positive", ErrInvalidInput)
	}

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return s.mapRepositoryError(op, id, err)
	}
	if session.State.IsTerminal() {
		return nil
	}

	dogs, err := s.companyDogs(ctx, op, session.CompanyID)
	if err != nil {
		return err
	}
	if _, ok := domain.FindDog(dogs, dogID); !ok {
		s.logger.Warn("%s: dog=%d is not registered in company=%d", op, dogID, session.CompanyID)
		return fmt.Errorf("%w: id=%d", ErrDogNotFound, dogID)
	}
	return nil
}

func (s *Service) companyDogs(ctx context.Context, op string, companyID int64) ([]domain.Dog, error) {
	dogs, err := s.dogs.CompanyDogs(ctx, companyID)
	if err != nil {
		if errors.Is(err, petapi.ErrUnauthorized) {
			s.logger.Warn("%s: dog registry rejected token for company=%d", op, companyID)
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		s.logger.Error("%s: failed to load dogs for company=%d: %v", op, companyID, err)
		return nil, fmt.Errorf("%w: %v", ErrDogsUnavailable, err)
	}
	return dogs, nil
}

func (s *Service) mapRepositoryError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, checkinRepo.ErrSessionNotFound):
		s.logger.Warn("%s: session id=%s not found", op, id)
		return ErrSessionNotFound
	case errors.Is(err, ErrSessionClosed),
		errors.Is(err, ErrSubmissionInFlight),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrAddonNotFound),
		errors.Is(err, ErrDogRequired),
		errors.Is(err, ErrInvalidStay),
		errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: session id=%s rejected: %v", op, id, err)
		return err
	default:
		s.logger.Error("%s: repository error for session id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func selectDog(session *domain.CheckinSession, dogID int64) error {
	if dogID <= 0 {
		return fmt.Errorf("%w: dogId must be positive", ErrInvalidInput)
	}
	session.Draft.DogID = &dogID
	return nil
}

func selectService(session *domain.CheckinSession, serviceID int64) error {
	if err := requireDog(session); err != nil {
		return err
	}
	if _, ok := session.Catalog.FindMain(serviceID); !ok {
		return fmt.Errorf("%w: id=%d", ErrServiceNotFound, serviceID)
	}
	session.Draft.SelectedServiceID = &serviceID
	return nil
}

func setStay(session *domain.CheckinSession, from, to *time.Time) error {
	if err := requireDog(session); err != nil {
		return err
	}
	if from == nil && to != nil {
		return fmt.Errorf("%w: check-out without check-in", ErrInvalidInput)
	}
	if from != nil && to != nil && to.Before(*from) {
		return ErrInvalidStay
	}
	session.Draft.Stay = domain.NewStayRange(from, to)
	return nil
}

// requireDog в сценарии dog_step детали вводятся только после выбора собаки
func requireDog(session *domain.CheckinSession) error {
	if session.Flow == domain.FlowDogStep && session.Draft.DogID == nil {
		return ErrDogRequired
	}
	return nil
}
