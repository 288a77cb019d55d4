package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mealio/food-order-service/internal/entities"

	"github.com/google/uuid"
)

var ErrInvalidAddress = errors.New("invalid address")

type AddressRepo interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Address, error)
	GetByID(ctx context.Context, id string) (entities.Address, error)
	SaveAddress(ctx context.Context, a entities.Address) error
}

type addressService struct {
	logger    *slog.Logger
	addresses AddressRepo
}

func NewAddressService(logger *slog.Logger, addresses AddressRepo) *addressService {
	return &addressService{
		logger:    logger.With(slog.String("service", "address")),
		addresses: addresses,
	}
}

func (s *addressService) ListAddresses(ctx context.Context, userID string) ([]entities.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

func (s *addressService) CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error) {
	if a.RecipientName == "" || a.Street == "" || a.City == "" {
		return entities.Address{}, ErrInvalidAddress
	}
	if a.Category == "" {
		a.Category = entities.AddressOther
	}
	if !a.Category.Valid() {
		return entities.Address{}, ErrInvalidAddress
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	if err := s.addresses.SaveAddress(ctx, a); err != nil {
		return entities.Address{}, err
	}

	s.logger.InfoContext(ctx, "address created",
		slog.String("address_id", a.ID), slog.String("user_id", a.UserID))
	return a, nil
}
