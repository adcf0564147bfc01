package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/pkg/psqlbuilder"
)

// Repository реплика каталога услуг в postgres. Только чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ServicesByCompany получает активные услуги компании в порядке ID
func (r *Repository) ServicesByCompany(ctx context.Context, companyID int64) ([]domain.Service, error) {
	query, args, err := servicesByCompanyQuery(companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: ServicesByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ServicesByCompany - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

func servicesByCompanyQuery(companyID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"type",
		"category",
		"price",
		"pricing_unit",
		"duration_minutes",
		"start_time",
		"end_time",
		"days_available",
		"active",
	).
		From("services").
		Where(squirrel.Eq{"company_id": companyID, "active": true}).
		OrderBy("id").
		ToSql()
}

func scanServices(rows *sql.Rows) ([]domain.Service, error) {
	services := make([]domain.Service, 0)

	for rows.Next() {
		var s domain.Service
		var duration sql.NullInt64
		var startTime, endTime sql.NullString
		var days pq.StringArray

		err := rows.Scan(
			&s.ID,
			&s.CompanyID,
			&s.Name,
			&s.Type,
			&s.Category,
			&s.Price,
			&s.PricingUnit,
			&duration,
			&startTime,
			&endTime,
			&days,
			&s.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}

		s.DurationMinutes = int(duration.Int64)
		s.StartTime = startTime.String
		s.EndTime = endTime.String
		s.DaysAvailable = []string(days)

		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
