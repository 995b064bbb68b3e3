package dto

import (
	"mime/multipart"

	"drive4less/internal/domains/vehicle/model"
	"drive4less/shared"
	"drive4less/shared/constant"
	gDto "drive4less/shared/dto"
	"drive4less/shared/format"
	gModel "drive4less/shared/model"
	"drive4less/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateVehicleRequest struct {
	Brand     string   `json:"brand"      validate:"required,min=1,max=100"`
	Model     string   `json:"model"      validate:"required,min=1,max=100"`
	Year      int      `json:"year"       validate:"required,gte=1900,lte=2100"`
	Price     *int64   `json:"price"      validate:"omitempty,gte=0"`
	Mileage   *int64   `json:"mileage"    validate:"omitempty,gte=0"`
	Condition string   `json:"condition"  validate:"required,oneof=Excellent Good Fair"`
	Status    string   `json:"status"     validate:"required,oneof=Available Sold Reserved"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,dive,url"`
}

// syncImages keeps the legacy single-image column consistent with the image
// list: first uploaded image, or the stock placeholder when nothing was
// uploaded.
func syncImages(imageURLs []string) (string, pq.StringArray) {
	imageURL := constant.PlaceholderImage
	if len(imageURLs) > 0 {
		imageURL = imageURLs[0]
	}

	urls := imageURLs
	if urls == nil {
		urls = []string{}
	}

	return imageURL, pq.StringArray(urls)
}

func (c *CreateVehicleRequest) ToModel(user string) model.Vehicle {
	imageURL, imageURLs := syncImages(c.ImageURLs)

	return model.Vehicle{
		ID:        uuid.NewString(),
		Brand:     c.Brand,
		Model:     c.Model,
		Year:      c.Year,
		Price:     c.Price,
		Mileage:   c.Mileage,
		Condition: c.Condition,
		Status:    c.Status,
		ImageURL:  &imageURL,
		ImageURLs: imageURLs,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateVehicleRequest replaces every editable column. Omitted nullable
// fields clear their columns instead of keeping the stored value, so the
// edit form always writes exactly what it shows.
type UpdateVehicleRequest struct {
	Brand     string   `json:"brand"      validate:"required,min=1,max=100"`
	Model     string   `json:"model"      validate:"required,min=1,max=100"`
	Year      int      `json:"year"       validate:"required,gte=1900,lte=2100"`
	Price     *int64   `json:"price"      validate:"omitempty,gte=0"`
	Mileage   *int64   `json:"mileage"    validate:"omitempty,gte=0"`
	Condition string   `json:"condition"  validate:"required,oneof=Excellent Good Fair"`
	Status    string   `json:"status"     validate:"required,oneof=Available Sold Reserved"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,dive,url"`
}

func (u *UpdateVehicleRequest) ToUpdateMap(user string) map[string]any {
	imageURL, imageURLs := syncImages(u.ImageURLs)

	return map[string]any{
		model.FieldBrand:         u.Brand,
		model.FieldModel:         u.Model,
		model.FieldYear:          u.Year,
		model.FieldPrice:         u.Price,
		model.FieldMileage:       u.Mileage,
		model.FieldCondition:     u.Condition,
		model.FieldStatus:        u.Status,
		model.FieldImageURL:      imageURL,
		model.FieldImageURLs:     imageURLs,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type VehicleResponse struct {
	ID             string   `json:"id"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Year           int      `json:"year"`
	Price          *int64   `json:"price"`
	PriceDisplay   string   `json:"price_display"`
	Mileage        *int64   `json:"mileage"`
	MileageDisplay string   `json:"mileage_display"`
	Condition      string   `json:"condition"`
	Status         string   `json:"status"`
	ImageURL       string   `json:"image_url"`
	ImageURLs      []string `json:"image_urls"`
	Images         []string `json:"images"`
	gDto.Metadata
}

func (r *VehicleResponse) FromModel(model model.Vehicle) {
	r.ID = model.ID
	r.Brand = model.Brand
	r.Model = model.Model
	r.Year = model.Year
	r.Price = model.Price
	r.PriceDisplay = format.Price(model.Price)
	r.Mileage = model.Mileage
	r.MileageDisplay = format.Mileage(model.Mileage)
	r.Condition = model.Condition
	r.Status = model.Status

	if model.ImageURL != nil {
		r.ImageURL = *model.ImageURL
	}

	r.ImageURLs = model.ImageURLs
	r.Images = model.DisplayImages()
	r.Metadata.FromModel(model.Metadata)
}

type CreateVehicleResponse struct {
	Message string          `json:"message"`
	Vehicle VehicleResponse `json:"vehicle"`
}

func (r *CreateVehicleResponse) FromModel(model model.Vehicle) {
	r.Message = "Vehicle " + model.Brand + " " + model.Model + " added successfully!"
	r.Vehicle.FromModel(model)
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetVehiclesResponse) FromModels(models []model.Vehicle, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehicles = make([]VehicleResponse, len(models))
	for i, m := range models {
		r.Vehicles[i].FromModel(m)
	}
}

type VehicleStatsResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Sold      int `json:"sold"`
	Reserved  int `json:"reserved"`
}

type UploadImagesRequest struct {
	Files []*multipart.FileHeader `json:"files" swaggerignore:"true" validate:"required,min=1,dive,required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`
}

// UploadImagesBase64Request uploads images posted as data URLs instead of
// multipart files.
type UploadImagesBase64Request struct {
	Images []string `json:"images" validate:"required,min=1,dive,required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`
}

type UploadedImage struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// UploadImagesResponse preserves the order of the submitted files so the
// caller can keep its primary-image selection.
type UploadImagesResponse struct {
	Images []UploadedImage `json:"images"`
	URLs   []string        `json:"urls"`
}

func (r *UploadImagesResponse) FromUploads(images []UploadedImage) {
	r.Images = images

	r.URLs = make([]string, len(images))
	for i, img := range images {
		r.URLs[i] = img.URL
	}
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}

// InventoryEvent is published to the inventory topic on every write so
// downstream consumers can mirror stock changes.
type InventoryEvent struct {
	Event      string `json:"event"`
	VehicleID  string `json:"vehicle_id"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func NewInventoryEvent(event string, vehicle model.Vehicle) InventoryEvent {
	return InventoryEvent{
		Event:      event,
		VehicleID:  vehicle.ID,
		Brand:      vehicle.Brand,
		Model:      vehicle.Model,
		Status:     vehicle.Status,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
