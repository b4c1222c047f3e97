package repository

import (
	"context"
	"time"

	"ecocart/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var comparisonColumns = []string{
	"id", "user_id", "product_id1", "product_id2",
	"product1_score", "product2_score", "winner_id", "score_difference",
	"highlights", "graph", "external_data", "recommendations", "created_at",
}

// ProductCount is one row of the most-compared aggregation.
type ProductCount struct {
	ProductID uuid.UUID
	Count     int64
}

// DayCount is one point of the per-day comparison trend.
type DayCount struct {
	Day   string
	Count int64
}

// ComparisonRepository persists comparison history. Records expire after the
// retention window: every read filters expired rows and DeleteExpired removes
// them for good. Expiry is a storage policy, the services never see it.
type ComparisonRepository struct {
	db            *pgxpool.Pool
	retentionDays int
	logger        *zap.Logger
}

func NewComparisonRepository(db *pgxpool.Pool, retention time.Duration, logger *zap.Logger) *ComparisonRepository {
	days := int(retention.Hours() / 24)
	if days <= 0 {
		days = 30
	}
	return &ComparisonRepository{
		db:            db,
		retentionDays: days,
		logger:        logger,
	}
}

func (r *ComparisonRepository) notExpired() squirrel.Sqlizer {
	return squirrel.Expr("created_at > NOW() - (? * INTERVAL '1 day')", r.retentionDays)
}

func (r *ComparisonRepository) Save(ctx context.Context, cmp *models.Comparison) error {
	query := squirrel.Insert("comparisons").
		Columns(comparisonColumns...).
		Values(cmp.ID, cmp.UserID, cmp.ProductID1, cmp.ProductID2,
			cmp.Product1Score, cmp.Product2Score, cmp.WinnerID, cmp.ScoreDifference,
			cmp.Highlights, cmp.Graph, cmp.ExternalData, cmp.Recommendations, cmp.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ComparisonRepository) listRecentQuery(userID uuid.UUID, limit int) squirrel.SelectBuilder {
	return squirrel.Select(comparisonColumns...).
		From("comparisons").
		Where(squirrel.Eq{"user_id": userID}).
		Where(r.notExpired()).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ComparisonRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Comparison, error) {
	sql, args, err := r.listRecentQuery(userID, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparisons []*models.Comparison
	for rows.Next() {
		var cmp models.Comparison
		if err := rows.Scan(
			&cmp.ID, &cmp.UserID, &cmp.ProductID1, &cmp.ProductID2,
			&cmp.Product1Score, &cmp.Product2Score, &cmp.WinnerID, &cmp.ScoreDifference,
			&cmp.Highlights, &cmp.Graph, &cmp.ExternalData, &cmp.Recommendations, &cmp.CreatedAt,
		); err != nil {
			return nil, err
		}
		comparisons = append(comparisons, &cmp)
	}

	return comparisons, rows.Err()
}

func (r *ComparisonRepository) getByIDQuery(id uuid.UUID) squirrel.SelectBuilder {
	return squirrel.Select(comparisonColumns...).
		From("comparisons").
		Where(squirrel.Eq{"id": id}).
		Where(r.notExpired()).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ComparisonRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comparison, error) {
	sql, args, err := r.getByIDQuery(id).ToSql()
	if err != nil {
		return nil, err
	}

	var cmp models.Comparison
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cmp.ID, &cmp.UserID, &cmp.ProductID1, &cmp.ProductID2,
		&cmp.Product1Score, &cmp.Product2Score, &cmp.WinnerID, &cmp.ScoreDifference,
		&cmp.Highlights, &cmp.Graph, &cmp.ExternalData, &cmp.Recommendations, &cmp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &cmp, nil
}

func (r *ComparisonRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("comparisons").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ComparisonRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	query := squirrel.Delete("comparisons").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// MostCompared counts how often each product appears across stored
// comparisons, both slots counted, descending.
func (r *ComparisonRepository) MostCompared(ctx context.Context, limit int) ([]ProductCount, error) {
	query := squirrel.Select("product_id", "COUNT(*) AS cnt").
		From("(SELECT product_id1 AS product_id, created_at FROM comparisons" +
			" UNION ALL SELECT product_id2, created_at FROM comparisons) appearances").
		Where(r.notExpired()).
		GroupBy("product_id").
		OrderBy("cnt DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ProductCount
	for rows.Next() {
		var pc ProductCount
		if err := rows.Scan(&pc.ProductID, &pc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, pc)
	}

	return counts, rows.Err()
}

func (r *ComparisonRepository) CountAll(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("comparisons").
		Where(r.notExpired()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ComparisonRepository) trendQuery() squirrel.SelectBuilder {
	return squirrel.Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day", "COUNT(*) AS cnt").
		From("comparisons").
		Where(squirrel.Expr("created_at >= NOW() - INTERVAL '7 days'")).
		Where(r.notExpired()).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ComparisonRepository) TrendLast7Days(ctx context.Context) ([]DayCount, error) {
	sql, args, err := r.trendQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		trend = append(trend, dc)
	}

	return trend, rows.Err()
}

func (r *ComparisonRepository) AverageScoreDifference(ctx context.Context) (float64, error) {
	query := squirrel.Select("COALESCE(AVG(score_difference), 0)").
		From("comparisons").
		Where(r.notExpired()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var avg float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&avg); err != nil {
		return 0, err
	}

	return avg, nil
}

// DeleteExpired removes records past the retention window. Called
// periodically by the retention sweeper.
func (r *ComparisonRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := squirrel.Delete("comparisons").
		Where(squirrel.Expr("created_at <= NOW() - (? * INTERVAL '1 day')", r.retentionDays)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
