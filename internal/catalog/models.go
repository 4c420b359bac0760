package catalog

import "github.com/shopspring/decimal"

// Vendor categories as stored in the vendors table.
const (
	VendorCleaning   = "cleaning"
	VendorHandyman   = "handyman"
	VendorBeauty     = "beauty"
	VendorRestaurant = "restaurant"
	VendorGrocery    = "grocery"
)

// Vendor represents a bookable or orderable business.
type Vendor struct {
	ID          string
	Name        string
	Category    string
	Tagline     string
	Area        string
	Rating      float64
	ReviewCount int
	ETA         string
	DeliveryFee decimal.Decimal
	Verified    bool
}

// Service represents a bookable service offered by a vendor.
type Service struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	Price       decimal.Decimal
	DurationMin int
}

// Item represents an orderable catalog line (menu item, grocery, beauty product).
type Item struct {
	ID       string
	VendorID string
	Name     string
	Section  string
	Price    decimal.Decimal
	InStock  bool
}

// Property represents a rentable property listing.
type Property struct {
	ID      string
	Title   string
	Area    string
	City    string
	Nightly decimal.Decimal
	Beds    int
	Baths   int
	Guests  int
	Rating  float64
}

// RideProvider represents a caregiving ride operator.
type RideProvider struct {
	ID          string
	Name        string
	VehicleType string
	Rating      float64
	BaseFare    decimal.Decimal
	PerKM       decimal.Decimal
	ETA         string
	Wheelchair  bool
}

// Companion represents a caregiving companionship provider.
type Companion struct {
	ID          string
	Name        string
	Bio         string
	Specialties string
	Rating      float64
	HourlyRate  decimal.Decimal
	Languages   string
}
