// Package format renders vehicle numbers the way the storefront displays
// them: Kwacha prices with thousands grouping and "call us" fallbacks for
// fields the dealer left blank.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	PriceOnRequest       = "Call for price"
	MileageOnRequest     = "Call for details"
	MileageOnRequestLong = "Call for more information"
	currencyPrefix       = "K"
)

var printer = message.NewPrinter(language.English)

// Price renders a nullable price as "K{grouped}" or the call-for-price
// fallback.
func Price(price *int64) string {
	if price == nil {
		return PriceOnRequest
	}

	return printer.Sprintf("%s%d", currencyPrefix, *price)
}

// Mileage renders a nullable mileage as "{grouped} km" or the catalog
// fallback string.
func Mileage(mileage *int64) string {
	if mileage == nil {
		return MileageOnRequest
	}

	return printer.Sprintf("%d km", *mileage)
}

// MileageDetail is Mileage with the longer fallback the detail page shows.
func MileageDetail(mileage *int64) string {
	if mileage == nil {
		return MileageOnRequestLong
	}

	return printer.Sprintf("%d km", *mileage)
}
