package service_test

import (
	"bytes"
	"context"
	b64 "encoding/base64"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"drive4less/config"
	kafkaMocks "drive4less/infras/kafka/mocks"
	"drive4less/infras/otel/mocks"
	s3Mocks "drive4less/infras/s3/mocks"
	vehicleMocks "drive4less/internal/domains/vehicle/mocks"
	"drive4less/internal/domains/vehicle/model"
	"drive4less/internal/domains/vehicle/model/dto"
	"drive4less/internal/domains/vehicle/service"
	cacheMocks "drive4less/shared/cache/mocks"
	"drive4less/shared/constant"
	gDto "drive4less/shared/dto"
)

type testMocks struct {
	repo  *vehicleMocks.MockVehicle
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	kafka *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Vehicle, *config.Config, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := testMocks{
		repo:  vehicleMocks.NewMockVehicle(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "vehicle-images"

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3, m.kafka)

	return svc, cfg, m
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestVehicleService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateVehicleRequest
		setupMock func(m testMocks, cfg *config.Config)
		wantErr   bool
	}{
		{
			name: "successful creation publishes inventory event",
			req: dto.CreateVehicleRequest{
				Brand:     "Toyota",
				Model:     "Corolla",
				Year:      2018,
				Price:     int64Ptr(85000),
				Condition: constant.VehicleConditionGood,
				Status:    constant.VehicleStatusAvailable,
			},
			setupMock: func(m testMocks, cfg *config.Config) {
				cfg.Kafka.Enable = true
				cfg.Kafka.Topic = "inventory-events"

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), "inventory-events", gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateVehicleRequest{
				Brand:     "Toyota",
				Model:     "Corolla",
				Year:      2018,
				Condition: constant.VehicleConditionGood,
				Status:    constant.VehicleStatusAvailable,
			},
			setupMock: func(m testMocks, _ *config.Config) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cfg, m := newService(t)
			tt.setupMock(m, cfg)

			ctx := context.WithValue(context.Background(), constant.ContextKeyAdminID, constant.AdminSubject)
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Vehicle Toyota Corolla added successfully!", res.Message)
				assert.NotEmpty(t, res.Vehicle.ID)
			}
		})
	}
}

func TestVehicleService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func(m testMocks)
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				vehicles := []model.Vehicle{
					{
						ID:     "test-id",
						Brand:  "Toyota",
						Model:  "Corolla",
						Status: constant.VehicleStatusAvailable,
					},
				}

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(vehicles, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, m := newService(t)
			tt.setupMock(m)

			result, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestVehicleService_Get(t *testing.T) {
	vehicle := model.Vehicle{
		ID:     "test-id",
		Brand:  "Toyota",
		Model:  "Vitz",
		Status: constant.VehicleStatusAvailable,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func(m testMocks)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "test-id",
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "test-id",
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicle, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "test-id",
		},
		{
			name: "vehicle not found",
			id:   "nonexistent-id",
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, m := newService(t)
			tt.setupMock(m)

			result, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.id, "not-found error names the missing id")
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestVehicleService_Update(t *testing.T) {
	req := dto.UpdateVehicleRequest{
		Brand:     "Mazda",
		Model:     "Demio",
		Year:      2016,
		Condition: constant.VehicleConditionGood,
		Status:    constant.VehicleStatusSold,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func(m testMocks)
		wantErr   bool
	}{
		{
			name: "successful update",
			id:   "test-id",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			id:   "nonexistent-id",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyAdminID, constant.AdminSubject)
			err := svc.Update(ctx, req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehicleService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(m testMocks)
		wantErr   bool
	}{
		{
			name: "successful deletion keeps stored images",
			id:   "test-id",
			setupMock: func(m testMocks) {
				vehicle := model.Vehicle{
					ID:        "test-id",
					ImageURLs: []string{"https://cdn.example.com/vehicle-images/public/a.jpg"},
				}

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicle, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			id:   "nonexistent-id",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{}, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error is surfaced",
			id:   "test-id",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{ID: "test-id"}, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, m := newService(t)
			tt.setupMock(m)

			err := svc.Delete(context.Background(), tt.id)

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehicleService_Stats(t *testing.T) {
	svc, _, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			if len(filter.Filters) == 0 {
				return 10, nil
			}

			statusFilter, _ := filter.Filters[0].(gDto.Filter)
			switch statusFilter.Value {
			case constant.VehicleStatusAvailable:
				return 6, nil
			case constant.VehicleStatusSold:
				return 3, nil
			default:
				return 1, nil
			}
		}).
		Times(4)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Stats(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 6, res.Available)
	assert.Equal(t, 3, res.Sold)
	assert.Equal(t, 1, res.Reserved)
}

func makeFileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)
	for _, name := range names {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", "image/jpeg")

		part, err := writer.CreatePart(header)
		assert.NoError(t, err)

		_, err = part.Write([]byte("fake image bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(constant.RequestMaxMemory)
	assert.NoError(t, err)

	return form.File["files"]
}

func TestVehicleService_UploadImages(t *testing.T) {
	svc, _, m := newService(t)

	names := []string{"front.jpg", "side.jpg", "interior.jpg", "engine.jpg", "back.jpg"}

	m.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), constant.UploadDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
			return "https://cdn.example.com/public/" + fileName, nil
		}).
		Times(len(names))

	req := dto.UploadImagesRequest{Files: makeFileHeaders(t, names...)}
	res, err := svc.UploadImages(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, res.URLs, len(names))

	// Results keep submission order even though uploads run concurrently.
	for i, name := range names {
		assert.True(t, strings.HasSuffix(res.URLs[i], name), "url %q should end with %q", res.URLs[i], name)
	}
}

func TestVehicleService_UploadImages_Error(t *testing.T) {
	svc, _, m := newService(t)

	m.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("s3 upload error")).
		AnyTimes()

	req := dto.UploadImagesRequest{Files: makeFileHeaders(t, "front.jpg")}
	_, err := svc.UploadImages(context.Background(), req)

	assert.Error(t, err)
}

func TestVehicleService_UploadImagesBase64(t *testing.T) {
	svc, _, m := newService(t)

	payload := "data:image/png;base64," + b64.StdEncoding.EncodeToString([]byte("fake png bytes"))

	m.s3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), constant.UploadDirectory, gomock.Any(), "image/png", []byte("fake png bytes")).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
			return "https://cdn.example.com/public/" + fileName, nil
		})

	req := dto.UploadImagesBase64Request{Images: []string{payload}}
	res, err := svc.UploadImagesBase64(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, res.URLs, 1)
	assert.True(t, strings.HasSuffix(res.URLs[0], ".png"))
}

func TestVehicleService_DeleteImagesFromS3(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.DeleteImagesRequest
		setupMock func(m testMocks)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			req: dto.DeleteImagesRequest{
				ImageURLs: []string{"https://cdn.example.com/vehicle-images/public/a.jpg"},
			},
			setupMock: func(m testMocks) {
				m.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("public/a.jpg")

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "delete error",
			req: dto.DeleteImagesRequest{
				ImageURLs: []string{"https://cdn.example.com/vehicle-images/public/a.jpg"},
			},
			setupMock: func(m testMocks) {
				m.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("public/a.jpg")

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("s3 delete error"))
			},
			wantErr: true,
		},
		{
			name: "foreign URL is skipped",
			req: dto.DeleteImagesRequest{
				ImageURLs: []string{"https://elsewhere.com/image.jpg"},
			},
			setupMock: func(m testMocks) {
				m.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("")
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, m := newService(t)
			tt.setupMock(m)

			err := svc.DeleteImagesFromS3(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
