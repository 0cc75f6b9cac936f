package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

// CatalogSource is the part of the trip API the catalog reads from.
type CatalogSource interface {
	ListDestinations(ctx context.Context) ([]response_models.Destination, error)
	ListActivitiesByCountry(ctx context.Context, countryID int64) ([]response_models.Activity, error)
	ListRecommendedActivities(ctx context.Context, userID, countryID int64) ([]response_models.Activity, error)
	SetActivityLiked(ctx context.Context, userID, activityID int64, liked bool) error
}

// CatalogServiceInterface reads never fail: a catalog that cannot be fetched
// is logged and reported as empty so planning can continue. LikeActivity is a
// write and does report failures.
type CatalogServiceInterface interface {
	ListDestinations(ctx context.Context) []response_models.Destination
	ListActivitiesByDestination(ctx context.Context, destinationID int64) []response_models.Activity
	ListRecommendedActivities(ctx context.Context, userID, destinationID int64) []response_models.Activity
	LikeActivity(ctx context.Context, userID, destinationID, activityID int64, liked bool) error
}

type CatalogService struct {
	source CatalogSource
	cache  mem.Store
	ttl    time.Duration
	log    *zap.Logger
}

func NewCatalogService(source CatalogSource, cache mem.Store, ttl time.Duration, log *zap.Logger) CatalogServiceInterface {
	return &CatalogService{source: source, cache: cache, ttl: ttl, log: log}
}

const destinationsKey = "catalog:destinations"

func activitiesKey(destinationID int64) string {
	return fmt.Sprintf("catalog:activities:%d", destinationID)
}

func (s *CatalogService) ListDestinations(ctx context.Context) []response_models.Destination {
	var out []response_models.Destination
	if s.cached(ctx, destinationsKey, &out) {
		return out
	}

	out, err := s.source.ListDestinations(ctx)
	if err != nil {
		s.log.Warn("could not fetch destinations", zap.Error(err))
		return []response_models.Destination{}
	}
	if out == nil {
		out = []response_models.Destination{}
	}
	s.store(ctx, destinationsKey, out)
	return out
}

func (s *CatalogService) ListActivitiesByDestination(ctx context.Context, destinationID int64) []response_models.Activity {
	key := activitiesKey(destinationID)
	var out []response_models.Activity
	if s.cached(ctx, key, &out) {
		return out
	}

	out, err := s.source.ListActivitiesByCountry(ctx, destinationID)
	if err != nil {
		s.log.Warn("could not fetch activities",
			zap.Int64("destination_id", destinationID), zap.Error(err))
		return []response_models.Activity{}
	}
	if out == nil {
		out = []response_models.Activity{}
	}
	s.store(ctx, key, out)
	return out
}

// ListRecommendedActivities is user specific and is not cached.
func (s *CatalogService) ListRecommendedActivities(ctx context.Context, userID, destinationID int64) []response_models.Activity {
	out, err := s.source.ListRecommendedActivities(ctx, userID, destinationID)
	if err != nil {
		s.log.Warn("could not fetch recommended activities",
			zap.Int64("user_id", userID),
			zap.Int64("destination_id", destinationID),
			zap.Error(err))
		return []response_models.Activity{}
	}
	if out == nil {
		out = []response_models.Activity{}
	}
	return out
}

// LikeActivity records or clears the user's like. When the destination's
// catalog is known the activity has to be part of it.
func (s *CatalogService) LikeActivity(ctx context.Context, userID, destinationID, activityID int64, liked bool) error {
	if catalog := s.ListActivitiesByDestination(ctx, destinationID); len(catalog) > 0 &&
		!slices.ContainsFunc(catalog, func(a response_models.Activity) bool { return a.ID == activityID }) {
		return planner.ErrActivityNotInCatalog
	}
	if err := s.source.SetActivityLiked(ctx, userID, activityID, liked); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrRemoteUnavailable, err)
	}
	s.log.Info("activity like updated",
		zap.Int64("user_id", userID),
		zap.Int64("activity_id", activityID),
		zap.Bool("liked", liked))
	return nil
}

func (s *CatalogService) cached(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		s.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (s *CatalogService) store(ctx context.Context, key string, v any) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, s.ttl)
}

// ToActivityRefs converts catalog rows into planner refs. Negative prices
// from the trip API are treated as free.
func ToActivityRefs(activities []response_models.Activity) []planner.ActivityRef {
	refs := make([]planner.ActivityRef, 0, len(activities))
	for _, a := range activities {
		price := a.Price
		if price < 0 {
			price = 0
		}
		refs = append(refs, planner.ActivityRef{
			ID:        a.ID,
			Name:      a.Name,
			Title:     a.Title,
			Price:     price,
			Address:   a.Address,
			ImageURL:  a.ImageURL,
			CountryID: a.CountryID,
		})
	}
	return refs
}

func toCatalogActivities(refs []planner.ActivityRef) []response_models.Activity {
	out := make([]response_models.Activity, 0, len(refs))
	for _, r := range refs {
		out = append(out, response_models.Activity{
			ID:        r.ID,
			Name:      r.Name,
			Title:     r.Title,
			ImageURL:  r.ImageURL,
			CountryID: r.CountryID,
			Address:   r.Address,
			Price:     r.Price,
		})
	}
	return out
}
