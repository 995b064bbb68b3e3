package dto_test

import (
	"testing"

	"drive4less/internal/domains/vehicle/model"
	"drive4less/internal/domains/vehicle/model/dto"
	"drive4less/shared/constant"
	gModel "drive4less/shared/model"
	"drive4less/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestCreateVehicleRequest_ToModel(t *testing.T) {
	req := dto.CreateVehicleRequest{
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      2018,
		Price:     int64Ptr(85000),
		Mileage:   int64Ptr(120000),
		Condition: constant.VehicleConditionGood,
		Status:    constant.VehicleStatusAvailable,
		ImageURLs: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}

	userID := "admin"
	vehicle := req.ToModel(userID)

	assert.NotEmpty(t, vehicle.ID, "expected ID to be generated")
	assert.Equal(t, req.Brand, vehicle.Brand)
	assert.Equal(t, req.Model, vehicle.Model)
	assert.Equal(t, req.Year, vehicle.Year)
	assert.Equal(t, req.Price, vehicle.Price)
	assert.Equal(t, req.Mileage, vehicle.Mileage)
	assert.Equal(t, pq.StringArray(req.ImageURLs), vehicle.ImageURLs)
	assert.Equal(t, "https://cdn.example.com/a.jpg", *vehicle.ImageURL, "first image becomes the primary image")
	assert.Equal(t, userID, vehicle.CreatedBy)
	assert.Equal(t, userID, vehicle.ModifiedBy)
	assert.False(t, vehicle.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateVehicleRequest_ToModel_NoImages(t *testing.T) {
	req := dto.CreateVehicleRequest{
		Brand:     "Nissan",
		Model:     "March",
		Year:      2015,
		Condition: constant.VehicleConditionFair,
		Status:    constant.VehicleStatusAvailable,
	}

	vehicle := req.ToModel("admin")

	assert.Equal(t, constant.PlaceholderImage, *vehicle.ImageURL, "placeholder stored when nothing was uploaded")
	assert.Equal(t, pq.StringArray{}, vehicle.ImageURLs)
	assert.Nil(t, vehicle.Price)
	assert.Nil(t, vehicle.Mileage)
}

func TestUpdateVehicleRequest_ToUpdateMap(t *testing.T) {
	req := dto.UpdateVehicleRequest{
		Brand:     "Mazda",
		Model:     "Demio",
		Year:      2016,
		Mileage:   int64Ptr(98500),
		Condition: constant.VehicleConditionExcellent,
		Status:    constant.VehicleStatusReserved,
		ImageURLs: []string{"https://cdn.example.com/demio.jpg"},
	}

	fields := req.ToUpdateMap("admin")

	assert.Equal(t, "Mazda", fields[model.FieldBrand])
	assert.Equal(t, "Demio", fields[model.FieldModel])
	assert.Equal(t, 2016, fields[model.FieldYear])
	assert.Equal(t, constant.VehicleStatusReserved, fields[model.FieldStatus])
	assert.Equal(t, "https://cdn.example.com/demio.jpg", fields[model.FieldImageURL])
	assert.Equal(t, pq.StringArray{"https://cdn.example.com/demio.jpg"}, fields[model.FieldImageURLs])
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

	// Full replace: an omitted price must clear the column.
	price, ok := fields[model.FieldPrice]
	assert.True(t, ok, "price key must be present even when nil")
	assert.Nil(t, price.(*int64))
}

func TestVehicleResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	vehicle := model.Vehicle{
		ID:        "test-id",
		Brand:     "Toyota",
		Model:     "Vitz",
		Year:      2014,
		Price:     int64Ptr(65000),
		Mileage:   int64Ptr(140000),
		Condition: constant.VehicleConditionGood,
		Status:    constant.VehicleStatusAvailable,
		ImageURL:  strPtr("https://cdn.example.com/vitz.jpg"),
		ImageURLs: pq.StringArray{"https://cdn.example.com/vitz.jpg"},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}

	var response dto.VehicleResponse
	response.FromModel(vehicle)

	assert.Equal(t, vehicle.ID, response.ID)
	assert.Equal(t, vehicle.Brand, response.Brand)
	assert.Equal(t, "K65,000", response.PriceDisplay)
	assert.Equal(t, "140,000 km", response.MileageDisplay)
	assert.Equal(t, "https://cdn.example.com/vitz.jpg", response.ImageURL)
	assert.Equal(t, []string{"https://cdn.example.com/vitz.jpg"}, response.Images)
	assert.Equal(t, vehicle.CreatedBy, response.CreatedBy)
}

func TestVehicleResponse_FromModel_ImagePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		vehicle  model.Vehicle
		expected []string
	}{
		{
			name: "legacy image used when the list is empty",
			vehicle: model.Vehicle{
				ID:       "legacy-only",
				Brand:    "Mazda",
				Model:    "Demio",
				ImageURL: strPtr("https://cdn.example.com/legacy.jpg"),
			},
			expected: []string{"https://cdn.example.com/legacy.jpg"},
		},
		{
			name: "uploaded list wins over the legacy image",
			vehicle: model.Vehicle{
				ID:        "both-fields-set",
				Brand:     "Mazda",
				Model:     "Demio",
				ImageURL:  strPtr("https://cdn.example.com/legacy.jpg"),
				ImageURLs: pq.StringArray{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			},
			expected: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var response dto.VehicleResponse
			response.FromModel(tt.vehicle)

			assert.Equal(t, tt.expected, response.Images)
		})
	}
}

func TestVehicleResponse_FromModel_NoPriceNoImages(t *testing.T) {
	vehicle := model.Vehicle{
		ID:     "test-id",
		Brand:  "Honda",
		Model:  "Fit",
		Status: constant.VehicleStatusAvailable,
	}

	var response dto.VehicleResponse
	response.FromModel(vehicle)

	assert.Nil(t, response.Price)
	assert.Equal(t, "Call for price", response.PriceDisplay)
	assert.Equal(t, "Call for details", response.MileageDisplay)
	assert.Equal(t, []string{constant.FallbackImage}, response.Images, "logo shown when no image is stored")
}

func TestCreateVehicleResponse_FromModel(t *testing.T) {
	vehicle := model.Vehicle{
		ID:    "test-id",
		Brand: "Toyota",
		Model: "Corolla",
	}

	var response dto.CreateVehicleResponse
	response.FromModel(vehicle)

	assert.Equal(t, "Vehicle Toyota Corolla added successfully!", response.Message)
	assert.Equal(t, vehicle.ID, response.Vehicle.ID)
}

func TestGetVehiclesResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	vehicles := []model.Vehicle{
		{
			ID:     "test-id-1",
			Brand:  "Toyota",
			Model:  "Corolla",
			Status: constant.VehicleStatusAvailable,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
			},
		},
		{
			ID:     "test-id-2",
			Brand:  "Nissan",
			Model:  "March",
			Status: constant.VehicleStatusSold,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
			},
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetVehiclesResponse
	response.FromModels(vehicles, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Vehicles, len(vehicles))

	for i, vehicle := range response.Vehicles {
		assert.Equal(t, vehicles[i].ID, vehicle.ID)
		assert.Equal(t, vehicles[i].Brand, vehicle.Brand)
	}
}

func TestUploadImagesResponse_FromUploads(t *testing.T) {
	uploads := []dto.UploadedImage{
		{URL: "https://cdn.example.com/public/1-a-first.jpg", FileName: "1-a-first.jpg"},
		{URL: "https://cdn.example.com/public/2-b-second.jpg", FileName: "2-b-second.jpg"},
	}

	var response dto.UploadImagesResponse
	response.FromUploads(uploads)

	assert.Equal(t, uploads, response.Images)
	assert.Equal(t, []string{
		"https://cdn.example.com/public/1-a-first.jpg",
		"https://cdn.example.com/public/2-b-second.jpg",
	}, response.URLs, "URL order follows submission order")
}
