package quote_pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
	checkinModels "github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

// UseCase use case для расчета стоимости без сессии заезда
type UseCase struct {
	catalog  CatalogProvider
	composer *pricing.Composer
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogProvider, composer *pricing.Composer, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		composer: composer,
		logger:   logger,
	}
}

// Execute рассчитывает позиции и итог по каталогу компании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePricing: company=%d, serviceType=%s, addons=%v", req.CompanyID, req.ServiceType, req.AddonIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePricing: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем каталог выбранного типа
	view, err := uc.catalog.View(ctx, req.CompanyID, domain.ServiceType(req.ServiceType))
	if err != nil {
		if errors.Is(err, catalogService.ErrUnauthorized) {
			uc.logger.Warn("QuotePricing: catalog rejected token for company=%d", req.CompanyID)
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("QuotePricing: failed to load catalog for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(view.Main) == 0 {
		return nil, ErrNoMainService
	}

	// 3. Определяем основную услугу
	main, ok := view.ResolveMain(req.ServiceID)
	if !ok {
		if req.ServiceID != nil {
			uc.logger.Warn("QuotePricing: service id=%d not found in company=%d", *req.ServiceID, req.CompanyID)
			return nil, ErrServiceNotFound
		}
		return nil, ErrServiceRequired
	}

	// 4. Считаем множитель
	stay := domain.NewStayRange(req.From, req.To)
	units, ok := pricing.ComputeUnits(main, &stay)
	if !ok {
		return nil, ErrIncompleteStay
	}

	// 5. Собираем позиции
	skipped := pricing.StaleAddonIDs(view.Addons, req.AddonIDs)
	if len(skipped) > 0 {
		uc.logger.Warn("QuotePricing: skipping unknown addon ids %v", skipped)
	}
	result := uc.composer.Compose(main, view.Addons, dedupe(req.AddonIDs), units)

	priced := checkinModels.FromPricingResult(&result)
	return &Response{
		ServiceID:       main.ID,
		Items:           priced.Items,
		Total:           priced.Total,
		Nights:          priced.Nights,
		SkippedAddonIDs: skipped,
	}, nil
}

// dedupe убирает повторы, сохраняя порядок первого выбора
func dedupe(ids []int64) []int64 {
	draft := domain.ReservationDraft{}
	for _, id := range ids {
		draft.AddAddon(id)
	}
	return draft.SelectedAddonIDs
}
