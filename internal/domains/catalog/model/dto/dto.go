package dto

import (
	"drive4less/internal/domains/vehicle/model"
	"drive4less/shared/format"
)

// CatalogVehicleResponse is the public storefront view of a vehicle. Raw
// numbers ride along with their display strings so the caller never has to
// re-derive the "call us" fallbacks.
type CatalogVehicleResponse struct {
	ID             string   `json:"id"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Name           string   `json:"name"`
	Year           int      `json:"year"`
	Price          *int64   `json:"price"`
	PriceDisplay   string   `json:"price_display"`
	MileageDisplay string   `json:"mileage_display"`
	Condition      string   `json:"condition"`
	Status         string   `json:"status"`
	Image          string   `json:"image"`
	Images         []string `json:"images"`
}

func (r *CatalogVehicleResponse) FromModel(model model.Vehicle) {
	images := model.DisplayImages()

	r.ID = model.ID
	r.Brand = model.Brand
	r.Model = model.Model
	r.Name = model.FullName()
	r.Year = model.Year
	r.Price = model.Price
	r.PriceDisplay = format.Price(model.Price)
	r.MileageDisplay = format.Mileage(model.Mileage)
	r.Condition = model.Condition
	r.Status = model.Status
	r.Image = images[0]
	r.Images = images
}

// CatalogVehicleDetailResponse is the detail-page view; it differs from the
// listing card only in the longer mileage fallback text.
type CatalogVehicleDetailResponse struct {
	CatalogVehicleResponse
}

func (r *CatalogVehicleDetailResponse) FromModel(model model.Vehicle) {
	r.CatalogVehicleResponse.FromModel(model)
	r.MileageDisplay = format.MileageDetail(model.Mileage)
}

type FeaturedVehiclesResponse struct {
	Vehicles []CatalogVehicleResponse `json:"vehicles"`
}

func (r *FeaturedVehiclesResponse) FromModels(models []model.Vehicle) {
	r.Vehicles = make([]CatalogVehicleResponse, len(models))
	for i, m := range models {
		r.Vehicles[i].FromModel(m)
	}
}

type CatalogListResponse struct {
	Vehicles []CatalogVehicleResponse `json:"vehicles"`
	Brands   []string                 `json:"brands"`
	Total    int                      `json:"total"`
}

func (r *CatalogListResponse) FromModels(models []model.Vehicle, brands []string) {
	r.Brands = brands
	r.Total = len(models)

	r.Vehicles = make([]CatalogVehicleResponse, len(models))
	for i, m := range models {
		r.Vehicles[i].FromModel(m)
	}
}
