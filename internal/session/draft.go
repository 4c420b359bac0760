package session

import "github.com/shopspring/decimal"

// Defaults used when synthesizing draft data from loose history entries.
const (
	defaultRating      = 4.8
	defaultDurationMin = 120
)

// Draft is the live booking draft: a common core plus exactly one
// category-specific payload selected by Category. It is assembled just before
// a payment step and consumed just after; the finalized record goes to the
// bookings history instead.
type Draft struct {
	Category Category
	Vendor   VendorRef
	Service  ServiceRef
	Address  Address
	Payment  PaymentCard
	Schedule Schedule
	Total    decimal.Decimal

	Cleaning  *CleaningDetails
	Handyman  *HandymanDetails
	Beauty    *BeautyDetails
	Rental    *RentalDetails
	Ride      *RideDetails
	Companion *CompanionDetails
}

// CleaningDetails carries the cleaning flow extras.
type CleaningDetails struct {
	Bedrooms     int
	Bathrooms    int
	DeepClean    bool
	Supplies     bool // provider brings supplies
	Instructions string
}

// HandymanDetails carries the handyman flow extras.
type HandymanDetails struct {
	JobType     string
	Description string
	Urgent      bool
	PhotosNote  string
}

// BeautyDetails carries the beauty services flow extras.
type BeautyDetails struct {
	AtHome     bool
	Stylist    string
	Notes      string
	ProductIDs []string // beauty-product orders piggyback on this draft
}

// RentalDetails carries the rental flow extras.
type RentalDetails struct {
	PropertyID string
	Guests     int
	Nights     int
	CheckIn    string
	CheckOut   string
}

// RideDetails carries the caregiving ride flow extras.
type RideDetails struct {
	ProviderID  string
	Pickup      string
	Dropoff     string
	Wheelchair  bool
	Accompanied bool
}

// CompanionDetails carries the companionship flow extras.
type CompanionDetails struct {
	CompanionID string
	Hours       int
	Activities  string
	Notes       string
}

// Payload returns the category-specific payload as an any, or nil.
func (d *Draft) Payload() interface{} {
	switch d.Category {
	case CategoryCleaning:
		return d.Cleaning
	case CategoryHandyman:
		return d.Handyman
	case CategoryBeauty:
		return d.Beauty
	case CategoryRental:
		return d.Rental
	case CategoryCareRide:
		return d.Ride
	case CategoryCareCompanion:
		return d.Companion
	}
	return nil
}

// Kind maps the draft category to the history kind it finalizes into.
// Beauty drafts carrying product IDs finalize as beauty-products.
func (d *Draft) Kind() BookingKind {
	switch d.Category {
	case CategoryCleaning:
		return KindCleaning
	case CategoryHandyman:
		return KindHandyman
	case CategoryBeauty:
		if d.Beauty != nil && len(d.Beauty.ProductIDs) > 0 {
			return KindBeautyProducts
		}
		return KindBeauty
	case CategoryRental:
		return KindRental
	case CategoryCareRide:
		return KindCareRide
	case CategoryCareCompanion:
		return KindCareCompanion
	}
	return ""
}

// AdaptReport records every field a normalizer or adapter had to synthesize.
// An empty report means full fidelity.
type AdaptReport struct {
	Synthesized []SynthesizedField
}

// SynthesizedField names one field filled with a plausible default.
type SynthesizedField struct {
	Field  string
	Reason string
}

func (r *AdaptReport) note(field, reason string) {
	r.Synthesized = append(r.Synthesized, SynthesizedField{Field: field, Reason: reason})
}

// Clean reports whether nothing was synthesized.
func (r AdaptReport) Clean() bool { return len(r.Synthesized) == 0 }

// Fields returns the synthesized field names in order.
func (r AdaptReport) Fields() []string {
	out := make([]string, 0, len(r.Synthesized))
	for _, f := range r.Synthesized {
		out = append(out, f.Field)
	}
	return out
}
