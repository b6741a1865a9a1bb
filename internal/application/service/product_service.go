package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/apperror"
	"github.com/gopidist/pharma-pos-api/pkg/match"
)

// subsequenceThreshold is the minimum in-order character overlap for the
// accurate tier to call a product a match.
const subsequenceThreshold = 0.7

// escalationMinQueryLen guards against escalating on very short queries,
// where a full scan would mostly return noise.
const escalationMinQueryLen = 3

// ProductService handles product catalogue operations and search
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if product.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock must not be negative")
	}
	product.Batch = strings.ToUpper(strings.TrimSpace(product.Batch))

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if strings.TrimSpace(product.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if product.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock must not be negative")
	}
	product.Batch = strings.ToUpper(strings.TrimSpace(product.Batch))

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by ID
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// Search runs the two-tier product search. The fast tier is an index-backed
// prefix scan on name or batch. The accurate tier scans the whole catalogue
// in memory, matching on substring containment or in-order character
// overlap, and runs when explicitly requested or when the fast tier comes
// back empty for a query long enough to be worth the full scan.
//
// An empty query returns the full catalogue when limit <= 0 (the list view)
// and nothing when capped (autocomplete).
func (s *ProductService) Search(ctx context.Context, query string, mode enum.SearchMode, limit int) ([]entity.Product, error) {
	query = strings.TrimSpace(query)

	if query == "" {
		if limit <= 0 {
			return s.productRepo.GetAll(ctx)
		}
		return []entity.Product{}, nil
	}

	if mode != enum.SearchModeAccurate {
		results, err := s.productRepo.SearchPrefix(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		if len(results) > 0 || len(query) <= escalationMinQueryLen {
			return results, nil
		}
		// Fast tier found nothing; fall through to the full scan
	}

	return s.searchAccurate(ctx, query, limit)
}

func (s *ProductService) searchAccurate(ctx context.Context, query string, limit int) ([]entity.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]entity.Product, 0)
	for _, p := range products {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, q) || match.SubsequenceRatio(q, name) > subsequenceThreshold {
			results = append(results, p)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
	}
	return results, nil
}

// CountExpiringBefore counts products that go out of date before the cutoff
// and still have stock on the shelf.
func (s *ProductService) CountExpiringBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.productRepo.CountExpiringBefore(ctx, cutoff)
}
