package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий расписания: недельные правила и заблокированные даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRulesByBusiness получает недельные правила бизнеса.
// Если dayOfWeek задан, возвращаются только правила этого дня.
// Правила возвращаются как есть: некорректные интервалы отбрасываются при расчёте слотов.
func (r *Repository) GetRulesByBusiness(ctx context.Context, businessID int64, dayOfWeek *time.Weekday) ([]domain.WeeklyAvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("availability_rules").
		Where(squirrel.Eq{"business_id": businessID})

	if dayOfWeek != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_of_week": int(*dayOfWeek)})
	}

	query, args, err := selectBuilder.OrderBy("day_of_week ASC", "start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.WeeklyAvailabilityRule, 0)
	for rows.Next() {
		var rule domain.WeeklyAvailabilityRule
		var day int

		if err := rows.Scan(&rule.ID, &rule.BusinessID, &day, &rule.StartTime, &rule.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetRulesByBusiness - scan row: %v", ErrScanRow, err)
		}
		rule.DayOfWeek = time.Weekday(day)

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRulesByBusiness - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetBlockedDates получает блокировки бизнеса на календарную дату
func (r *Repository) GetBlockedDates(ctx context.Context, businessID int64, date time.Time) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"blocked_date",
		"start_time",
		"end_time",
		"reason",
	).
		From("blocked_dates").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"blocked_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var b domain.BlockedDate

		if err := rows.Scan(&b.ID, &b.BusinessID, &b.Date, &b.StartTime, &b.EndTime, &b.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedDates - scan row: %v", ErrScanRow, err)
		}
		// DATE из postgres приходит полночью UTC: сохраняем только календарную дату
		b.Date = domain.DateOnly(b.Date, time.UTC)

		blocked = append(blocked, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}
