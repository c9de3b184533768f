package services

import (
	"context"
	"slices"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/request_models"
	"cougcuts/internal/models/response_models"
	"cougcuts/pkg/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductServiceInterface interface {
	ListProducts(req request_models.ListProductsRequest, ctx context.Context) (*response_models.ProductPage, error)
	GetProduct(id string, ctx context.Context) (*engine.Product, error)
	ListConcerns(ctx context.Context) []string
}

type ProductService struct{}

func NewProductService() ProductServiceInterface {
	return &ProductService{}
}

// normalizePage fills zero values with defaults and rejects the rest.
func normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}

func (s *ProductService) ListProducts(req request_models.ListProductsRequest, ctx context.Context) (*response_models.ProductPage, error) {
	page, pageSize, err := normalizePage(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	var matched []engine.Product
	for _, p := range engine.Catalog() {
		if req.HairType != "" && !slices.Contains(p.HairTypes, engine.HairType(req.HairType)) {
			continue
		}
		if req.Tier != "" && p.Tier != engine.Tier(req.Tier) {
			continue
		}
		if req.Category != "" && p.Category != engine.Category(req.Category) {
			continue
		}
		if len(req.Concerns) > 0 && !slices.ContainsFunc(req.Concerns, func(c string) bool { return slices.Contains(p.Concerns, c) }) {
			continue
		}
		matched = append(matched, p)
	}

	start := min((page-1)*pageSize, len(matched))
	end := min(start+pageSize, len(matched))
	items := matched[start:end]
	if items == nil {
		items = []engine.Product{}
	}

	return &response_models.ProductPage{
		Items:    items,
		Total:    len(matched),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *ProductService) GetProduct(id string, ctx context.Context) (*engine.Product, error) {
	p, ok := engine.ProductByID(id)
	if !ok {
		return nil, utils.ErrProductNotFound
	}
	return &p, nil
}

func (s *ProductService) ListConcerns(ctx context.Context) []string {
	return engine.Concerns()
}
