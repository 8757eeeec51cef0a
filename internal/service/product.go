package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"erpapi/internal/export"
	"erpapi/internal/model"
	"erpapi/internal/repository"
	"erpapi/internal/storage"
)

// ProductInput is the writable part of a product. Quantity is only taken on
// create; later changes go through AdjustStock.
type ProductInput struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Unit         string   `json:"unit"`
	Quantity     int      `json:"quantity"`
	ReorderLevel *int     `json:"reorder_level"`
	Price        *float64 `json:"price"`
	Location     string   `json:"location"`
}

// maxStockDelta bounds a single adjustment so the quantity guard cannot overflow.
const maxStockDelta = 1_000_000_000

// StockAdjustment changes the on-hand quantity by Delta.
type StockAdjustment struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// ProductService defines the warehouse use cases.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, f repository.ProductFilter, limit, offset int) (*ListResult[model.Product], error)
	Update(ctx context.Context, id string, in ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	// AdjustStock applies the delta atomically; the quantity never drops below zero.
	AdjustStock(ctx context.Context, id string, adj StockAdjustment) (*model.Product, error)
	LowStock(ctx context.Context) ([]model.Product, error)
	Export(ctx context.Context, w io.Writer, f repository.ProductFilter) error
	UploadImage(ctx context.Context, id string, img ImageUpload) (*model.Product, error)
	ImageURL(ctx context.Context, id string) (string, error)
}

type productService struct {
	repo   repository.ProductRepository
	images *imageStore
	logger *slog.Logger
}

// NewProductService constructs a new ProductService.
func NewProductService(repo repository.ProductRepository, store storage.Storage, logger *slog.Logger) ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &productService{repo: repo, images: newImageStore(store, logger), logger: logger}
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := requireFields(field{"sku", in.SKU}, field{"name", in.Name}); err != nil {
		return nil, err
	}
	if err := validateProductNumbers(in); err != nil {
		return nil, err
	}
	if in.Quantity < 0 || in.Quantity > maxStockDelta {
		return nil, invalid("quantity")
	}

	now := nowUTC()
	p := &model.Product{
		ID:        newID(),
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductInput(p, in)

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return p, nil
}

func (s *productService) List(ctx context.Context, f repository.ProductFilter, limit, offset int) (*ListResult[model.Product], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *productService) Update(ctx context.Context, id string, in ProductInput) (*model.Product, error) {
	if err := validateProductNumbers(in); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProductInput(p, in)
	p.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	if p.ImageKey != "" && s.images.store != nil {
		if err := s.images.store.Delete(ctx, p.ImageKey); err != nil {
			s.logger.WarnContext(ctx, "image_delete_failed", "key", p.ImageKey, "error", err)
		}
	}
	return nil
}

func (s *productService) AdjustStock(ctx context.Context, id string, adj StockAdjustment) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if adj.Delta == 0 || adj.Delta > maxStockDelta || adj.Delta < -maxStockDelta {
		return nil, invalid("delta")
	}
	p, err := s.repo.AdjustQuantity(ctx, id, adj.Delta)
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return nil, ErrInsufficientStock
		}
		return nil, mapRepoErr(err)
	}
	s.logger.InfoContext(ctx, "stock_adjusted",
		"product_id", id, "delta", adj.Delta, "reason", adj.Reason, "quantity", p.Quantity)
	return p, nil
}

func (s *productService) LowStock(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *productService) Export(ctx context.Context, w io.Writer, f repository.ProductFilter) error {
	products, err := s.repo.ListAll(ctx, f)
	if err != nil {
		return err
	}
	return export.Products(w, products)
}

func (s *productService) UploadImage(ctx context.Context, id string, img ImageUpload) (*model.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	key, err := s.images.replace(ctx, "products", id, p.ImageKey, img, s.repo.SetImageKey)
	if err != nil {
		return nil, err
	}
	p.ImageKey = key
	return p, nil
}

func (s *productService) ImageURL(ctx context.Context, id string) (string, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.images.url(ctx, p.ImageKey)
}

func validateProductNumbers(in ProductInput) error {
	var bad []string
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		bad = append(bad, "reorder_level")
	}
	if in.Price != nil && *in.Price < 0 {
		bad = append(bad, "price")
	}
	if len(bad) > 0 {
		return invalid(bad...)
	}
	return nil
}

func applyProductInput(p *model.Product, in ProductInput) {
	merge(&p.SKU, in.SKU)
	merge(&p.Name, in.Name)
	merge(&p.Category, in.Category)
	merge(&p.Unit, in.Unit)
	merge(&p.Location, in.Location)
	if in.ReorderLevel != nil {
		p.ReorderLevel = *in.ReorderLevel
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
}
