package model

import (
	"drive4less/shared/constant"
	gModel "drive4less/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID        = "id"
	FieldBrand     = "brand"
	FieldModel     = "model"
	FieldYear      = "year"
	FieldPrice     = "price"
	FieldMileage   = "mileage"
	FieldCondition = "condition"
	FieldStatus    = "status"
	FieldImageURL  = "image_url"
	FieldImageURLs = "image_urls"
)

type Vehicle struct {
	ID        string         `db:"id"`
	Brand     string         `db:"brand"`
	Model     string         `db:"model"`
	Year      int            `db:"year"`
	Price     *int64         `db:"price"`
	Mileage   *int64         `db:"mileage"`
	Condition string         `db:"condition"`
	Status    string         `db:"status"`
	ImageURL  *string        `db:"image_url"`
	ImageURLs pq.StringArray `db:"image_urls"`
	gModel.Metadata
}

// FullName is the display name used for listings and name sorting.
func (v Vehicle) FullName() string {
	return v.Brand + " " + v.Model
}

// DisplayImages derives the gallery shown for this vehicle: the uploaded
// image list wins, then the single legacy image column, then the dealership
// logo.
func (v Vehicle) DisplayImages() []string {
	if len(v.ImageURLs) > 0 {
		return v.ImageURLs
	}

	if v.ImageURL != nil && *v.ImageURL != constant.Empty {
		return []string{*v.ImageURL}
	}

	return []string{constant.FallbackImage}
}
