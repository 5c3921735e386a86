package generator

import (
	"fmt"
	"math"

	"greendrake/estate-seeder/internal/models"
)

const (
	minBedrooms     = 1
	maxBedrooms     = 6
	minAmenities    = 4
	maxAmenities    = 8
	luxuryChance    = 0.2
	bathroomsPerBed = 0.7
)

// Bathrooms derives the bathroom count for a bedroom count.
func Bathrooms(bedrooms int) int {
	return max(1, int(math.Round(float64(bedrooms)*bathroomsPerBed)))
}

// SynthesizeAttributes draws the structural attributes of one property.
func SynthesizeAttributes(rng Source) models.PropertyAttributes {
	bedrooms := between(rng, minBedrooms, maxBedrooms)
	return models.PropertyAttributes{
		Style:     pick(rng, propertyStyles),
		Bedrooms:  bedrooms,
		Bathrooms: Bathrooms(bedrooms),
		Luxury:    chance(rng, luxuryChance),
		Amenities: sample(rng, amenityCatalog, between(rng, minAmenities, maxAmenities)),
		Address:   Address(rng),
	}
}

// DrawListingType picks sale or rent with equal probability.
func DrawListingType(rng Source) models.ListingType {
	if Coin(rng) {
		return models.ListingTypeSale
	}
	return models.ListingTypeRent
}

// Coin returns true with probability one half.
func Coin(rng Source) bool {
	return chance(rng, 0.5)
}

// Address composes a street address with building number, street, city, state and postal code.
func Address(rng Source) string {
	loc := pick(rng, cities)
	return fmt.Sprintf("%d %s, %s, %s %05d",
		between(rng, 1, 9999), StreetName(rng), loc.City, loc.State, between(rng, 10000, 99999))
}

// StreetName returns a street name such as "Maple Avenue".
func StreetName(rng Source) string {
	return pick(rng, streetNames) + " " + pick(rng, streetSuffixes)
}
