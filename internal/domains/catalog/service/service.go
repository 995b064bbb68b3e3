package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"drive4less/config"
	"drive4less/infras/otel"
	"drive4less/internal/domains/catalog/model/dto"
	"drive4less/internal/domains/vehicle/model"
	"drive4less/internal/domains/vehicle/repository"
	"drive4less/shared"
	"drive4less/shared/cache"
	"drive4less/shared/constant"
	gDto "drive4less/shared/dto"
	"drive4less/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	cacheFeatured      = "catalog:featured"
	cacheCatalogList   = "catalog:list"
	cacheCatalogDetail = "catalog:detail"
)

type Catalog interface {
	Featured(ctx context.Context) (dto.FeaturedVehiclesResponse, error)
	List(ctx context.Context, brand, sortKey string) (dto.CatalogListResponse, error)
	Detail(ctx context.Context, id string) (dto.CatalogVehicleDetailResponse, error)
}

type serviceImpl struct {
	repo  repository.Vehicle
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Vehicle, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Featured returns the newest available vehicles shown on the home page.
func (s *serviceImpl) Featured(ctx context.Context) (res dto.FeaturedVehiclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheFeatured, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheFeatured).Msg("cache hit for featured vehicles")

		return res, nil
	}

	vehicles, err := s.repo.GetAll(ctx, gDto.NewestFirst(constant.FeaturedLimit), filterAvailable())
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured vehicles")

		return res, err
	}

	res.FromModels(vehicles)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheFeatured, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured vehicles to cache")
		}
	}()

	return res, nil
}

// List returns the available storefront inventory, newest first, with the
// brand filter and sort applied in memory. The distinct brand list always
// reflects the whole available set so the filter dropdown stays stable.
func (s *serviceImpl) List(ctx context.Context, brand, sortKey string) (res dto.CatalogListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if brand == constant.Empty {
		brand = constant.BrandFilterAll
	}

	cacheKey := shared.BuildCacheKey(cacheCatalogList, brand, sortKey)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for catalog listing")

		return res, nil
	}

	vehicles, err := s.repo.GetAll(ctx, gDto.NewestFirst(0), filterAvailable())
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog vehicles")

		return res, err
	}

	brands := distinctBrands(vehicles)

	if !strings.EqualFold(brand, constant.BrandFilterAll) {
		filtered := vehicles[:0:0]

		for _, v := range vehicles {
			if strings.EqualFold(v.Brand, brand) {
				filtered = append(filtered, v)
			}
		}

		vehicles = filtered
	}

	sortVehicles(vehicles, sortKey)

	res.FromModels(vehicles, brands)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalog listing to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.CatalogVehicleDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Detail")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCatalogDetail, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle detail")

		return res, nil
	}

	vehicle, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle detail")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("vehicle %s not found", id))
	}

	res.FromModel(vehicle)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle detail to cache")
		}
	}()

	return res, nil
}

func filterAvailable() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.VehicleStatusAvailable,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func distinctBrands(vehicles []model.Vehicle) []string {
	seen := map[string]bool{}
	brands := []string{}

	for _, v := range vehicles {
		if !seen[v.Brand] {
			seen[v.Brand] = true
			brands = append(brands, v.Brand)
		}
	}

	collator := collate.New(language.English, collate.IgnoreCase)
	collator.SortStrings(brands)

	return brands
}

// sortVehicles reorders the listing in place. Vehicles without a price sort
// as zero, so "call for price" stock leads the cheapest-first view.
func sortVehicles(vehicles []model.Vehicle, sortKey string) {
	switch sortKey {
	case constant.SortKeyName:
		collator := collate.New(language.English, collate.IgnoreCase)

		sort.SliceStable(vehicles, func(i, j int) bool {
			return collator.CompareString(vehicles[i].FullName(), vehicles[j].FullName()) < 0
		})
	case constant.SortKeyPrice:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return priceOrZero(vehicles[i].Price) < priceOrZero(vehicles[j].Price)
		})
	case constant.SortKeyYear:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Year > vehicles[j].Year
		})
	}
}

func priceOrZero(price *int64) int64 {
	if price == nil {
		return 0
	}

	return *price
}
