package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"erpapi/internal/storage"
)

// AssetInput is the writable part of an IT asset.
type AssetInput struct {
	AssetTag     string     `json:"asset_tag"`
	AssetType    string     `json:"asset_type"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	Status       string     `json:"status"`
	AssignedTo   string     `json:"assigned_to"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Remarks      string     `json:"remarks"`
}

// AssetService defines the use cases for IT assets.
type AssetService interface {
	Create(ctx context.Context, in AssetInput) (*model.Asset, error)
	Get(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context, f repository.AssetFilter, limit, offset int) (*ListResult[model.Asset], error)
	Update(ctx context.Context, id string, in AssetInput) (*model.Asset, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, img ImageUpload) (*model.Asset, error)
	ImageURL(ctx context.Context, id string) (string, error)
}

type assetService struct {
	repo   repository.AssetRepository
	images *imageStore
}

// NewAssetService constructs a new AssetService.
func NewAssetService(repo repository.AssetRepository, store storage.Storage, logger *slog.Logger) AssetService {
	return &assetService{repo: repo, images: newImageStore(store, logger)}
}

func (s *assetService) Create(ctx context.Context, in AssetInput) (*model.Asset, error) {
	if err := requireFields(
		field{"asset_tag", in.AssetTag},
		field{"asset_type", in.AssetType},
	); err != nil {
		return nil, err
	}
	if in.Status != "" && !validAssetStatus(in.Status) {
		return nil, invalid("status")
	}

	now := nowUTC()
	a := &model.Asset{
		ID:        newID(),
		Status:    model.AssetStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyAssetInput(a, in)
	if in.Status == "" && a.AssignedTo != "" {
		a.Status = model.AssetStatusAssigned
	}

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *assetService) Get(ctx context.Context, id string) (*model.Asset, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return a, nil
}

func (s *assetService) List(ctx context.Context, f repository.AssetFilter, limit, offset int) (*ListResult[model.Asset], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *assetService) Update(ctx context.Context, id string, in AssetInput) (*model.Asset, error) {
	if in.Status != "" && !validAssetStatus(in.Status) {
		return nil, invalid("status")
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAssetInput(a, in)
	a.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

// Delete removes the record, then its photo.
func (s *assetService) Delete(ctx context.Context, id string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	if a.ImageKey != "" && s.images.store != nil {
		if err := s.images.store.Delete(ctx, a.ImageKey); err != nil {
			s.images.logger.WarnContext(ctx, "image_delete_failed", "key", a.ImageKey, "error", err)
		}
	}
	return nil
}

func (s *assetService) UploadImage(ctx context.Context, id string, img ImageUpload) (*model.Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	key, err := s.images.replace(ctx, "assets", id, a.ImageKey, img, s.repo.SetImageKey)
	if err != nil {
		return nil, err
	}
	a.ImageKey = key
	return a, nil
}

func (s *assetService) ImageURL(ctx context.Context, id string) (string, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.images.url(ctx, a.ImageKey)
}

func validAssetStatus(s string) bool {
	switch s {
	case model.AssetStatusAvailable, model.AssetStatusAssigned, model.AssetStatusDefective, model.AssetStatusDisposed:
		return true
	}
	return false
}

func applyAssetInput(a *model.Asset, in AssetInput) {
	merge(&a.AssetTag, in.AssetTag)
	merge(&a.AssetType, in.AssetType)
	merge(&a.Brand, in.Brand)
	merge(&a.Model, in.Model)
	merge(&a.SerialNumber, in.SerialNumber)
	merge(&a.Status, in.Status)
	merge(&a.AssignedTo, in.AssignedTo)
	merge(&a.Department, in.Department)
	merge(&a.Location, in.Location)
	merge(&a.Remarks, in.Remarks)
	if in.PurchaseDate != nil {
		d := in.PurchaseDate.UTC()
		a.PurchaseDate = &d
	}
}
