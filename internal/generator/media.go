package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Image categories every listing gets, in order. Luxury listings add poolCategory.
var imageCategories = []string{"house", "interior", "kitchen", "bedroom"}

const poolCategory = "pool"

// Media builds avatar and listing image URLs.
type Media struct {
	AvatarBaseURL string
	ImageBaseURL  string
}

// AvatarURL returns a unique avatar URL keyed by a random UUID.
func (m Media) AvatarURL() string {
	return fmt.Sprintf("%s?u=%s", strings.TrimRight(m.AvatarBaseURL, "/"), uuid.NewString())
}

// ImageURLs returns one image per category, plus a pool image for luxury listings.
func (m Media) ImageURLs(rng Source, luxury bool) []string {
	categories := imageCategories
	if luxury {
		categories = append(categories[:len(categories):len(categories)], poolCategory)
	}
	base := strings.TrimRight(m.ImageBaseURL, "/")
	urls := make([]string, 0, len(categories))
	for _, c := range categories {
		urls = append(urls, fmt.Sprintf("%s/%s?lock=%d", base, c, rng.IntN(10000)))
	}
	return urls
}
