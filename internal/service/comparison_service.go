package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ecocart/internal/dto"
	"ecocart/internal/models"
	"ecocart/internal/repository"
	"ecocart/internal/sustain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrComparisonNotFound = errors.New("comparison not found")
	ErrForbidden          = errors.New("not authorized for this comparison")
)

const (
	recentHistoryLimit = 10
	mostComparedLimit  = 5
	additiveThreshold  = 5
)

// ComparisonStore is the persistence surface the orchestrator depends on.
// Implementations own the retention policy; callers never see expired records.
type ComparisonStore interface {
	Save(ctx context.Context, cmp *models.Comparison) error
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Comparison, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comparison, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
	MostCompared(ctx context.Context, limit int) ([]repository.ProductCount, error)
	CountAll(ctx context.Context) (int64, error)
	TrendLast7Days(ctx context.Context) ([]repository.DayCount, error)
	AverageScoreDifference(ctx context.Context) (float64, error)
}

// ProductResolver resolves product references stored in comparison records.
type ProductResolver interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Product, error)
}

// Enricher looks up optional third-party eco-data by product name.
type Enricher interface {
	Lookup(ctx context.Context, name string) (*models.ExternalProduct, error)
}

type ComparisonService struct {
	store    ComparisonStore
	products ProductResolver
	enricher Enricher
	logger   *zap.Logger
}

func NewComparisonService(store ComparisonStore, products ProductResolver, enricher Enricher, logger *zap.Logger) *ComparisonService {
	return &ComparisonService{
		store:    store,
		products: products,
		enricher: enricher,
		logger:   logger,
	}
}

// Compare produces the full comparison result for two resolved products.
// Scoring, narrative and graph data are deterministic; the two enrichment
// lookups run concurrently and degrade to nil on any failure, so Compare
// itself cannot fail.
func (s *ComparisonService) Compare(ctx context.Context, product1, product2 *models.Product) *dto.ComparisonResult {
	result1 := sustain.Score(product1.Sustainability)
	result2 := sustain.Score(product2.Sustainability)

	diff := result1.Score - result2.Score
	if diff < 0 {
		diff = -diff
	}

	// Strict comparison; a tie means no winner
	var winner *string
	bestFor := "Both products"
	if result1.Score > result2.Score {
		id := product1.ID.String()
		winner = &id
		bestFor = product1.Name
	} else if result2.Score > result1.Score {
		id := product2.ID.String()
		winner = &id
		bestFor = product2.Name
	}

	ecoDescription := sustain.EcoDescription(product1.Name, product2.Name, result1.Score, result2.Score)

	ext1, ext2 := s.enrichBoth(ctx, product1.Name, product2.Name)

	recommendations := models.Recommendations{
		General: []string{
			ecoDescription,
			fmt.Sprintf("Sustainability score difference: %d points", diff),
		},
		Product1Suggestions: result1.Suggestions,
		Product2Suggestions: result2.Suggestions,
	}

	if ext1 != nil && ext1.AdditivesCount > additiveThreshold {
		recommendations.Product1Suggestions = append(recommendations.Product1Suggestions,
			"High additive count - consider cleaner ingredients")
	}
	if ext2 != nil && ext2.AdditivesCount > additiveThreshold {
		recommendations.Product2Suggestions = append(recommendations.Product2Suggestions,
			"High additive count - consider cleaner ingredients")
	}

	return &dto.ComparisonResult{
		Products: []dto.ProductResponse{
			dto.NewProductResponse(product1),
			dto.NewProductResponse(product2),
		},
		Scores: dto.ComparisonScores{
			Product1:   result1.Score,
			Product2:   result2.Score,
			Difference: diff,
		},
		Winner: winner,
		Highlights: models.SustainabilityHighlights{
			Product1Advantages: result1.Advantages,
			Product2Advantages: result2.Advantages,
		},
		ComparisonGraph: sustain.BuildGraphData(product1, product2),
		ExternalData: models.ComparisonExternalData{
			Product1: ext1,
			Product2: ext2,
		},
		Recommendations: recommendations,
		EcoDescription:  ecoDescription,
		Summary: dto.ComparisonSummary{
			BestFor:       bestFor,
			KeyDifference: sustain.KeyDifference(product1.Name, product2.Name, result1, result2),
		},
	}
}

// enrichBoth runs the two lookups concurrently. Either, both or neither may
// succeed; a failed lookup yields nil.
func (s *ComparisonService) enrichBoth(ctx context.Context, name1, name2 string) (*models.ExternalProduct, *models.ExternalProduct) {
	var ext1, ext2 *models.ExternalProduct

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ext1 = s.lookup(ctx, name1)
	}()
	go func() {
		defer wg.Done()
		ext2 = s.lookup(ctx, name2)
	}()
	wg.Wait()

	return ext1, ext2
}

func (s *ComparisonService) lookup(ctx context.Context, name string) *models.ExternalProduct {
	ext, err := s.enricher.Lookup(ctx, name)
	if err != nil {
		s.logger.Debug("Enrichment lookup failed",
			zap.String("product", name),
			zap.Error(err),
		)
		return nil
	}
	return ext
}

// SaveComparison persists a computed result for a user. Persistence is
// opt-in: handlers call it only for authenticated callers.
func (s *ComparisonService) SaveComparison(ctx context.Context, userID uuid.UUID, result *dto.ComparisonResult) (*models.Comparison, error) {
	productID1, err := uuid.Parse(result.Products[0].ID)
	if err != nil {
		return nil, err
	}
	productID2, err := uuid.Parse(result.Products[1].ID)
	if err != nil {
		return nil, err
	}

	var winnerID *uuid.UUID
	if result.Winner != nil {
		id, err := uuid.Parse(*result.Winner)
		if err != nil {
			return nil, err
		}
		winnerID = &id
	}

	cmp := &models.Comparison{
		ID:              uuid.New(),
		UserID:          userID,
		ProductID1:      productID1,
		ProductID2:      productID2,
		Product1Score:   result.Scores.Product1,
		Product2Score:   result.Scores.Product2,
		WinnerID:        winnerID,
		ScoreDifference: result.Scores.Difference,
		Highlights:      result.Highlights,
		Graph:           result.ComparisonGraph,
		ExternalData:    result.ExternalData,
		Recommendations: result.Recommendations,
		CreatedAt:       time.Now(),
	}

	if err := s.store.Save(ctx, cmp); err != nil {
		return nil, err
	}

	s.logger.Info("Comparison saved",
		zap.String("comparison_id", cmp.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return cmp, nil
}

// History returns the caller's most recent comparisons, newest first, with
// product references resolved.
func (s *ComparisonService) History(ctx context.Context, userID uuid.UUID) ([]dto.ComparisonHistoryItem, error) {
	comparisons, err := s.store.ListRecentByUser(ctx, userID, recentHistoryLimit)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(comparisons)*2)
	for _, cmp := range comparisons {
		productIDs = append(productIDs, cmp.ProductID1, cmp.ProductID2)
	}

	productsByID, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ComparisonHistoryItem, 0, len(comparisons))
	for _, cmp := range comparisons {
		items = append(items, toHistoryItem(cmp, productsByID))
	}

	return items, nil
}

// GetByID returns a single comparison; only the owner or an admin may see it.
func (s *ComparisonService) GetByID(ctx context.Context, id, callerID uuid.UUID, callerRole string) (*dto.ComparisonHistoryItem, error) {
	cmp, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, ErrComparisonNotFound
	}

	if cmp.UserID != callerID && callerRole != string(models.RoleAdmin) {
		return nil, ErrForbidden
	}

	productsByID, err := s.products.GetByIDs(ctx, []uuid.UUID{cmp.ProductID1, cmp.ProductID2})
	if err != nil {
		return nil, err
	}

	item := toHistoryItem(cmp, productsByID)
	return &item, nil
}

// Delete removes one comparison; only the owner or an admin may delete it.
func (s *ComparisonService) Delete(ctx context.Context, id, callerID uuid.UUID, callerRole string) error {
	cmp, err := s.store.GetByID(ctx, id)
	if err != nil {
		return ErrComparisonNotFound
	}

	if cmp.UserID != callerID && callerRole != string(models.RoleAdmin) {
		return ErrForbidden
	}

	return s.store.DeleteByID(ctx, id)
}

func (s *ComparisonService) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	return s.store.DeleteAllForUser(ctx, userID)
}

// Stats assembles the admin analytics view.
func (s *ComparisonService) Stats(ctx context.Context) (*dto.ComparisonStats, error) {
	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.store.MostCompared(ctx, mostComparedLimit)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(counts))
	for _, pc := range counts {
		productIDs = append(productIDs, pc.ProductID)
	}

	productsByID, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	mostCompared := make([]dto.MostComparedProduct, 0, len(counts))
	for _, pc := range counts {
		product, ok := productsByID[pc.ProductID]
		if !ok {
			// Product deleted since the comparison was stored
			continue
		}
		mostCompared = append(mostCompared, dto.MostComparedProduct{
			Product: dto.NewProductResponse(product),
			Count:   pc.Count,
		})
	}

	trend, err := s.store.TrendLast7Days(ctx)
	if err != nil {
		return nil, err
	}

	trendPoints := make([]dto.TrendPoint, 0, len(trend))
	for _, dc := range trend {
		trendPoints = append(trendPoints, dto.TrendPoint{Date: dc.Day, Count: dc.Count})
	}

	avgDiff, err := s.store.AverageScoreDifference(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ComparisonStats{
		TotalComparisons:       total,
		MostComparedProducts:   mostCompared,
		Last7DaysTrend:         trendPoints,
		AverageScoreDifference: avgDiff,
	}, nil
}

func toHistoryItem(cmp *models.Comparison, productsByID map[uuid.UUID]*models.Product) dto.ComparisonHistoryItem {
	products := make([]dto.ProductResponse, 0, 2)
	for _, id := range []uuid.UUID{cmp.ProductID1, cmp.ProductID2} {
		if product, ok := productsByID[id]; ok {
			products = append(products, dto.NewProductResponse(product))
		}
	}

	var winner *string
	if cmp.WinnerID != nil {
		id := cmp.WinnerID.String()
		winner = &id
	}

	return dto.ComparisonHistoryItem{
		ID:       cmp.ID.String(),
		Products: products,
		Scores: dto.ComparisonScores{
			Product1:   cmp.Product1Score,
			Product2:   cmp.Product2Score,
			Difference: cmp.ScoreDifference,
		},
		Winner:          winner,
		Highlights:      cmp.Highlights,
		ComparisonGraph: cmp.Graph,
		ExternalData:    cmp.ExternalData,
		Recommendations: cmp.Recommendations,
		CreatedAt:       cmp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
