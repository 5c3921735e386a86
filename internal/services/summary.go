package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"greendrake/estate-seeder/internal/models"
)

// Summary reports what one seed run produced.
type Summary struct {
	RunID     string        `json:"runId"`
	Seed      uint64        `json:"seed"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"durationNs"`

	DeletedAccounts int64 `json:"deletedAccounts"`
	DeletedListings int64 `json:"deletedListings"`

	AccountsRequested int   `json:"accountsRequested"`
	AccountsCreated   int   `json:"accountsCreated"`
	ListingsRequested int   `json:"listingsRequested"`
	ListingsCreated   int   `json:"listingsCreated"`
	SkippedListings   []int `json:"skippedListings"`

	SaleCount        int     `json:"saleCount"`
	RentCount        int     `json:"rentCount"`
	AverageSalePrice float64 `json:"averageSalePrice"`
	AverageRentPrice float64 `json:"averageRentPrice"`
	OfferCount       int     `json:"offerCount"`
	FurnishedCount   int     `json:"furnishedCount"`
	ParkingCount     int     `json:"parkingCount"`
}

// addListingStats fills the listing statistics from successfully created listings only.
func (s *Summary) addListingStats(listings []models.Listing) {
	var saleTotal, rentTotal int
	for _, l := range listings {
		switch l.Type {
		case models.ListingTypeSale:
			s.SaleCount++
			saleTotal += l.RegularPrice
		case models.ListingTypeRent:
			s.RentCount++
			rentTotal += l.RegularPrice
		}
		if l.Offer {
			s.OfferCount++
		}
		if l.Furnished {
			s.FurnishedCount++
		}
		if l.Parking {
			s.ParkingCount++
		}
	}
	s.ListingsCreated = len(listings)
	s.AverageSalePrice = average(saleTotal, s.SaleCount)
	s.AverageRentPrice = average(rentTotal, s.RentCount)
}

func average(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// Print writes the human-readable report.
func (s *Summary) Print(w io.Writer) {
	sep := strings.Repeat("=", 50)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Seed run %s (seed %d)\n", s.RunID, s.Seed)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Removed           : %d accounts, %d listings\n", s.DeletedAccounts, s.DeletedListings)
	fmt.Fprintf(w, "  Accounts created  : %d/%d\n", s.AccountsCreated, s.AccountsRequested)
	fmt.Fprintf(w, "  Listings created  : %d/%d\n", s.ListingsCreated, s.ListingsRequested)
	if len(s.SkippedListings) > 0 {
		fmt.Fprintf(w, "  Skipped listings  : %v\n", s.SkippedListings)
	}
	fmt.Fprintf(w, "  Avg sale price    : $%.2f (%d listings)\n", s.AverageSalePrice, s.SaleCount)
	fmt.Fprintf(w, "  Avg rent price    : $%.2f (%d listings)\n", s.AverageRentPrice, s.RentCount)
	fmt.Fprintf(w, "  With offer        : %d\n", s.OfferCount)
	fmt.Fprintf(w, "  Furnished         : %d\n", s.FurnishedCount)
	fmt.Fprintf(w, "  With parking      : %d\n", s.ParkingCount)
	fmt.Fprintf(w, "  Took              : %s\n", s.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, sep)
}
