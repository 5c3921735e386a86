package generator

import (
	"math"

	"greendrake/estate-seeder/internal/models"
)

type priceBand struct {
	baseMin, baseMax int
	perBedroom       int // added per bedroom above two, subtracted below
	floor            int // lowest regular price ever quoted
}

var priceBands = map[models.ListingType]priceBand{
	models.ListingTypeSale: {baseMin: 200000, baseMax: 2000000, perBedroom: 100000, floor: 100000},
	models.ListingTypeRent: {baseMin: 1000, baseMax: 8000, perBedroom: 500, floor: 1000},
}

const (
	luxuryMultiplier = 1.5
	offerChance      = 0.3
	minDiscount      = 0.85
	maxDiscount      = 0.95
	priceStep        = 1000
)

// QuotePrice computes the regular and optional discounted price of a listing.
func QuotePrice(rng Source, listingType models.ListingType, bedrooms int, luxury bool) models.PriceQuote {
	band, ok := priceBands[listingType]
	if !ok {
		band = priceBands[models.ListingTypeSale]
	}

	price := float64(between(rng, band.baseMin, band.baseMax) + (bedrooms-2)*band.perBedroom)
	if luxury {
		price *= luxuryMultiplier
	}
	regular := max(roundDown(price), band.floor)

	quote := models.PriceQuote{RegularPrice: regular, DiscountPrice: regular}
	if !chance(rng, offerChance) {
		return quote
	}
	multiplier := minDiscount + rng.Float64()*(maxDiscount-minDiscount)
	discount := roundDown(float64(regular) * multiplier)
	if discount <= 0 || discount >= regular {
		return quote
	}
	quote.DiscountPrice = discount
	quote.HasOffer = true
	return quote
}

// roundDown rounds a price down to the nearest multiple of priceStep.
func roundDown(price float64) int {
	return int(math.Floor(price/priceStep)) * priceStep
}
