package settings

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shopsmart/shopsmart-backend/internal/sanitize"
	"github.com/shopsmart/shopsmart-backend/internal/storage"
)

// Service manages shop settings and the onboarding shop name.
type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req UpdateRequest) (*Settings, error)
	ShopName(ctx context.Context) (string, error)
	SetShopName(ctx context.Context, name string) (string, error)
}

type service struct {
	kv     storage.Store
	logger *slog.Logger
}

// NewService creates a settings service over the snapshot store.
func NewService(kv storage.Store, logger *slog.Logger) Service {
	return &service{kv: kv, logger: logger}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	data, err := s.kv.Get(ctx, storage.KeySettings)
	if err != nil {
		return nil, err
	}
	current := Defaults()
	if data != nil {
		if err := json.Unmarshal(data, &current); err != nil {
			s.logger.Warn("settings record corrupt, using defaults", "error", err)
			current = Defaults()
		}
	}
	return &current, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Language != nil {
		switch *req.Language {
		case "en", "ar", "hi":
			current.Language = *req.Language
		}
	}
	if req.Currency != nil {
		current.Currency = sanitize.String(*req.Currency)
	}
	if req.DarkMode != nil {
		current.DarkMode = *req.DarkMode
	}
	if req.BusinessType != nil {
		current.BusinessType = sanitize.String(*req.BusinessType)
	}
	if req.TaxRate != nil {
		current.TaxRate = sanitize.Percent(*req.TaxRate)
	}

	data, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, storage.KeySettings, data); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *service) ShopName(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, storage.KeyShopName)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *service) SetShopName(ctx context.Context, name string) (string, error) {
	cleaned := sanitize.String(name)
	if cleaned == "" {
		return "", errEmptyShopName
	}
	if err := s.kv.Set(ctx, storage.KeyShopName, []byte(cleaned)); err != nil {
		return "", err
	}
	return cleaned, nil
}
