// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	serviceRepo "dochouse/database/repository/service"
	"dochouse/models"
	"dochouse/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	servicesCacheKey = "catalog:services"
	servicesCacheTTL = 30 * time.Second
)

// CatalogService exposes the clinic-service catalog and slot booking.
type CatalogService interface {
	// ListServices returns all services with each slot collection
	// sorted ascending by start hour.
	ListServices() ([]models.Service, error)
	// AddBookedDate books a date on the labeled slot of the service
	// with the given hex id.
	AddBookedDate(id, slotLabel, date string) error
	// RemoveBookedDate releases a booked date on the labeled slot of
	// the named service.
	RemoveBookedDate(name, slotLabel, date string) error
}

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client // optional; nil disables caching
}

// ListServices returns the catalog, serving from the Redis cache when
// a fresh copy exists.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	if cached, ok := s.cachedServices(); ok {
		return cached, nil
	}

	services, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range services {
		SortSlots(services[i].AvailableSlots)
	}

	s.storeServices(services)
	return services, nil
}

// AddBookedDate books a date on a slot and invalidates the catalog cache.
func (s *DefaultCatalogService) AddBookedDate(id, slotLabel, date string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.NewError(utils.ErrBadRequest, "invalid service id")
	}
	if err := s.Repo.AddBookedDate(oid, slotLabel, date); err != nil {
		return mapSlotError(err)
	}
	s.invalidate()
	return nil
}

// RemoveBookedDate releases a booked date and invalidates the catalog cache.
func (s *DefaultCatalogService) RemoveBookedDate(name, slotLabel, date string) error {
	if name == "" {
		return utils.NewError(utils.ErrBadRequest, "service name is required")
	}
	if err := s.Repo.RemoveBookedDate(name, slotLabel, date); err != nil {
		return mapSlotError(err)
	}
	s.invalidate()
	return nil
}

func mapSlotError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return utils.NewError(utils.ErrNotFound, "service not found")
	case errors.Is(err, serviceRepo.ErrSlotNotFound):
		return utils.NewError(utils.ErrNotFound, "slot label not found")
	default:
		return err
	}
}

func (s *DefaultCatalogService) cachedServices() ([]models.Service, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, servicesCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (s *DefaultCatalogService) storeServices(services []models.Service) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, servicesCacheKey, raw, servicesCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache service catalog", zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidate() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, servicesCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate service catalog cache", zap.Error(err))
	}
}
