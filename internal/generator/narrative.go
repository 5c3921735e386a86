package generator

import (
	"fmt"
	"strings"

	"greendrake/estate-seeder/internal/models"
)

type nameParts struct {
	Style, Suffix, Adjective, Street string
}

// Listing name templates; each combines style, suffix, adjective and street.
var nameTemplates = []func(p nameParts) string{
	func(p nameParts) string { return fmt.Sprintf("%s %s %s on %s", p.Adjective, p.Style, p.Suffix, p.Street) },
	func(p nameParts) string { return fmt.Sprintf("The %s %s %s at %s", p.Street, p.Adjective, p.Style, p.Suffix) },
	func(p nameParts) string { return fmt.Sprintf("%s %s %s - %s", p.Street, p.Style, p.Suffix, p.Adjective) },
	func(p nameParts) string { return fmt.Sprintf("%s Living: %s %s near %s", p.Adjective, p.Style, p.Suffix, p.Street) },
	func(p nameParts) string { return fmt.Sprintf("%s %s %s by %s", p.Style, p.Suffix, p.Adjective, p.Street) },
}

// NameSuffix is the transaction-type dependent word used in listing names.
func NameSuffix(t models.ListingType) string {
	if t == models.ListingTypeRent {
		return "Residence"
	}
	return "Estate"
}

// ComposeName builds a listing name from one of the name templates.
func ComposeName(rng Source, style string, t models.ListingType) string {
	tmpl := pick(rng, nameTemplates)
	return tmpl(nameParts{
		Style:     style,
		Suffix:    NameSuffix(t),
		Adjective: pick(rng, nameAdjectives),
		Street:    StreetName(rng),
	})
}

// ComposeDescription builds the listing description for the given attributes.
// Amenities are listed in the order they were selected.
func ComposeDescription(rng Source, attrs models.PropertyAttributes) string {
	var b strings.Builder

	lead := sample(rng, leadInParagraphs, 2)
	b.WriteString(lead[0] + "\n\n" + lead[1] + "\n\n")

	fmt.Fprintf(&b, "This %d-bedroom %s home features:\n", attrs.Bedrooms, attrs.Style)
	for _, a := range attrs.Amenities {
		b.WriteString("- " + a + "\n")
	}
	b.WriteString("\n" + pick(rng, closingParagraphs) + "\n\n")

	b.WriteString("Location Highlights:\n")
	distance := 0.5 + rng.Float64()*4.5
	fmt.Fprintf(&b, "- %.1f miles from city center\n", distance)
	fmt.Fprintf(&b, "- Walking distance to %s\n", pick(rng, parkNames))
	fmt.Fprintf(&b, "- Minutes from %s\n", pick(rng, shoppingCenters))
	b.WriteString("- Easy access to major highways\n\n")

	b.WriteString(pick(rng, trailingParagraphs))
	return strings.TrimSpace(b.String())
}
