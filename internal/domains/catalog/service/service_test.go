package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"drive4less/config"
	"drive4less/infras/otel/mocks"
	"drive4less/internal/domains/catalog/service"
	vehicleMocks "drive4less/internal/domains/vehicle/mocks"
	"drive4less/internal/domains/vehicle/model"
	cacheMocks "drive4less/shared/cache/mocks"
	"drive4less/shared/constant"
	gDto "drive4less/shared/dto"
)

func newService(t *testing.T) (service.Catalog, *vehicleMocks.MockVehicle, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := vehicleMocks.NewMockVehicle(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func int64Ptr(v int64) *int64 {
	return &v
}

func inventory() []model.Vehicle {
	// The available set, newest first, as the repository returns it.
	return []model.Vehicle{
		{ID: "v4", Brand: "Nissan", Model: "March", Year: 2015, Price: int64Ptr(45000), Status: constant.VehicleStatusAvailable},
		{ID: "v3", Brand: "Toyota", Model: "Vitz", Year: 2017, Price: nil, Status: constant.VehicleStatusAvailable},
		{ID: "v2", Brand: "Mazda", Model: "Demio", Year: 2019, Price: int64Ptr(98000), Status: constant.VehicleStatusAvailable},
		{ID: "v1", Brand: "Toyota", Model: "Corolla", Year: 2016, Price: int64Ptr(85000), Status: constant.VehicleStatusAvailable},
	}
}

func TestCatalogService_Featured(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Vehicle, error) {
			assert.Equal(t, constant.FeaturedLimit, params.Limit)
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Len(t, filter.Filters, 1, "featured only lists available vehicles")

			return inventory()[:2], nil
		})

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Featured(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Vehicles, 2)
	assert.Equal(t, "Nissan March", res.Vehicles[0].Name)
}

func TestCatalogService_List_Sorting(t *testing.T) {
	tests := []struct {
		name      string
		brand     string
		sortKey   string
		wantIDs   []string
		wantTotal int
	}{
		{
			name:      "default keeps newest first",
			brand:     constant.BrandFilterAll,
			sortKey:   "",
			wantIDs:   []string{"v4", "v3", "v2", "v1"},
			wantTotal: 4,
		},
		{
			name:      "sort by name uses brand and model",
			brand:     constant.BrandFilterAll,
			sortKey:   constant.SortKeyName,
			wantIDs:   []string{"v2", "v4", "v1", "v3"},
			wantTotal: 4,
		},
		{
			name:      "sort by price puts call-for-price stock first",
			brand:     constant.BrandFilterAll,
			sortKey:   constant.SortKeyPrice,
			wantIDs:   []string{"v3", "v4", "v1", "v2"},
			wantTotal: 4,
		},
		{
			name:      "sort by year newest model first",
			brand:     constant.BrandFilterAll,
			sortKey:   constant.SortKeyYear,
			wantIDs:   []string{"v2", "v3", "v1", "v4"},
			wantTotal: 4,
		},
		{
			name:      "brand filter is case insensitive",
			brand:     "toyota",
			sortKey:   "",
			wantIDs:   []string{"v3", "v1"},
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("cache miss"))

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Vehicle, error) {
					assert.Len(t, filter.Filters, 1, "the storefront only lists available vehicles")

					return inventory(), nil
				})

			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.List(context.Background(), tt.brand, tt.sortKey)

			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)

			gotIDs := make([]string, len(res.Vehicles))
			for i, v := range res.Vehicles {
				gotIDs[i] = v.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)

			// Brand list always covers the whole available set.
			assert.Equal(t, []string{"Mazda", "Nissan", "Toyota"}, res.Brands)
		})
	}
}

func TestCatalogService_List_RepositoryError(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.List(context.Background(), constant.BrandFilterAll, "")

	assert.Error(t, err)
}

func TestCatalogService_Detail(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(mockRepo *vehicleMocks.MockVehicle, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "found",
			id:   "v1",
			setupMock: func(mockRepo *vehicleMocks.MockVehicle, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{ID: "v1", Brand: "Toyota", Model: "Corolla"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found carries the id",
			id:   "missing-id",
			setupMock: func(mockRepo *vehicleMocks.MockVehicle, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Detail(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
				assert.Equal(t, "Call for more information", res.MileageDisplay)
				assert.Equal(t, []string{constant.FallbackImage}, res.Images)
			}
		})
	}
}
