package models

// ListingType is the transaction type of a listing.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// PropertyAttributes are the structural attributes synthesized for one property.
type PropertyAttributes struct {
	Style     string
	Bedrooms  int
	Bathrooms int
	Luxury    bool
	Amenities []string // selection order preserved, no duplicates
	Address   string
}

// PriceQuote is the list price and the optional discounted price of a listing.
type PriceQuote struct {
	RegularPrice  int
	DiscountPrice int
	HasOffer      bool
}

// Listing represents a property listing document in the "listings" collection.
type Listing struct {
	Base          `bson:",inline"`
	Name          string      `bson:"name" json:"name"`
	Description   string      `bson:"description" json:"description"`
	Address       string      `bson:"address" json:"address"`
	RegularPrice  int         `bson:"regularPrice" json:"regularPrice"`
	DiscountPrice int         `bson:"discountPrice" json:"discountPrice"`
	Bathrooms     int         `bson:"bathrooms" json:"bathrooms"`
	Bedrooms      int         `bson:"bedrooms" json:"bedrooms"`
	Furnished     bool        `bson:"furnished" json:"furnished"`
	Parking       bool        `bson:"parking" json:"parking"`
	Type          ListingType `bson:"type" json:"type"`
	Offer         bool        `bson:"offer" json:"offer"`
	ImageURLs     []string    `bson:"imageUrls" json:"imageUrls"`
	UserRef       string      `bson:"userRef" json:"userRef"` // hex id of the owning account
}
