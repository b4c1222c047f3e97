package service

import (
	"context"
	"errors"
	"time"

	"ecocart/internal/dto"
	"ecocart/internal/models"
	"ecocart/internal/repository"
	"ecocart/internal/sustain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	productRepo *repository.ProductRepository
	logger      *zap.Logger
}

func NewProductService(productRepo *repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	now := time.Now()
	product := &models.Product{
		ID:             uuid.New(),
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Price:          req.Price,
		Description:    req.Description,
		Sustainability: req.Sustainability,
		// Denormalized score follows the sustainability block
		SustainabilityScore: sustain.Score(req.Sustainability).Score,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

// FindByName resolves a product by case-insensitive substring match.
func (s *ProductService) FindByName(ctx context.Context, name string) (*models.Product, error) {
	product, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Sustainability != nil {
		product.Sustainability = req.Sustainability
		product.SustainabilityScore = sustain.Score(req.Sustainability).Score
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(ctx, id)
}
