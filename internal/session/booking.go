package session

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category discriminates the booking-draft flows. Only one flow can be
// mid-flight at a time.
type Category string

const (
	CategoryNone          Category = ""
	CategoryCleaning      Category = "cleaning"
	CategoryHandyman      Category = "handyman"
	CategoryBeauty        Category = "beauty"
	CategoryRental        Category = "rental"
	CategoryCareRide      Category = "care-ride"
	CategoryCareCompanion Category = "care-companionship"
)

// Categories lists the draft categories in display order.
var Categories = []Category{
	CategoryCleaning, CategoryHandyman, CategoryBeauty,
	CategoryRental, CategoryCareRide, CategoryCareCompanion,
}

// BookingKind tags finalized history entries. It is a superset of Category:
// the three order flows finalize into history too.
type BookingKind string

const (
	KindCleaning       BookingKind = "cleaning"
	KindHandyman       BookingKind = "handyman"
	KindBeauty         BookingKind = "beauty"
	KindBeautyProducts BookingKind = "beauty-products"
	KindFood           BookingKind = "food"
	KindGrocery        BookingKind = "grocery"
	KindRental         BookingKind = "rental"
	KindCareRide       BookingKind = "care-ride"
	KindCareCompanion  BookingKind = "care-companionship"
)

// Booking statuses.
const (
	StatusAccepted   = "accepted"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking is a finalized, normalized history record. Address, vendor and
// service are always canonical structured values here; loose seed data is
// converted exactly once by NormalizeBooking and never re-parsed at render
// time.
type Booking struct {
	ID        string
	Kind      BookingKind
	Status    string
	Vendor    VendorRef
	Service   ServiceRef
	Address   Address
	Payment   PaymentCard
	Schedule  Schedule
	Items     []CartLine // order kinds only
	Total     decimal.Decimal
	HasReview bool
	Rating    int
	Review    string
	CreatedAt time.Time
}

// BookingSeed is the loose input shape bookings historically arrived in:
// every structured field may instead be only a display string. Exactly one of
// the pair (text, struct) is expected per field; when both are set the
// structured value wins.
type BookingSeed struct {
	ID          string
	Kind        BookingKind
	Status      string
	VendorText  string
	Vendor      *VendorRef
	ServiceText string
	Service     *ServiceRef
	AddressText string
	Address     *Address
	Date        string
	Time        string
	EndDate     string
	Total       string
	Items       []CartLine
	HasReview   bool
	CreatedAt   time.Time
}

// NormalizeBooking converts a loose seed into a canonical Booking. It is
// total: string-only fields become structured placeholders, and every
// synthesized field is listed in the returned report so the fallback stays
// observable instead of silent.
func NormalizeBooking(seed BookingSeed) (Booking, AdaptReport) {
	var rep AdaptReport

	b := Booking{
		ID:        seed.ID,
		Kind:      seed.Kind,
		Status:    seed.Status,
		Items:     seed.Items,
		HasReview: seed.HasReview,
		CreatedAt: seed.CreatedAt,
		Schedule:  Schedule{Date: seed.Date, Time: seed.Time, EndDate: seed.EndDate},
	}
	if b.Status == "" {
		b.Status = StatusAccepted
		rep.note("status", "defaulted to accepted")
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = Now()
		rep.note("createdAt", "defaulted to now")
	}

	switch {
	case seed.Vendor != nil:
		b.Vendor = *seed.Vendor
	case seed.VendorText != "":
		b.Vendor = VendorRef{Name: seed.VendorText, Rating: defaultRating}
		rep.note("vendor", "synthesized from display text")
	default:
		b.Vendor = VendorRef{Name: string(seed.Kind) + " provider", Rating: defaultRating}
		rep.note("vendor", "synthesized placeholder")
	}

	switch {
	case seed.Service != nil:
		b.Service = *seed.Service
	case seed.ServiceText != "":
		b.Service = ServiceRef{Name: seed.ServiceText, DurationMin: defaultDurationMin}
		rep.note("service", "synthesized from display text")
	default:
		b.Service = ServiceRef{Name: defaultServiceName(seed.Kind), DurationMin: defaultDurationMin}
		rep.note("service", "synthesized placeholder")
	}

	switch {
	case seed.Address != nil:
		b.Address = *seed.Address
	case seed.AddressText != "":
		b.Address = Address{Label: seed.AddressText, Street: seed.AddressText}
		rep.note("address", "synthesized from display text")
	default:
		b.Address = Address{Label: "Saved address"}
		rep.note("address", "synthesized placeholder")
	}

	if seed.Total != "" {
		if total, err := decimal.NewFromString(seed.Total); err == nil {
			b.Total = total
		} else {
			rep.note("total", fmt.Sprintf("unparseable %q, defaulted to zero", seed.Total))
		}
	} else if len(seed.Items) > 0 {
		b.Total = Cart{Lines: seed.Items}.Subtotal()
	} else if !b.Service.Price.IsZero() {
		b.Total = b.Service.Price
	}

	return b, rep
}

func defaultServiceName(kind BookingKind) string {
	switch kind {
	case KindCleaning:
		return "Standard Cleaning"
	case KindHandyman:
		return "General Repair"
	case KindBeauty:
		return "Beauty Appointment"
	case KindRental:
		return "Stay"
	case KindCareRide:
		return "Ride"
	case KindCareCompanion:
		return "Companionship Visit"
	case KindFood, KindGrocery, KindBeautyProducts:
		return "Order"
	}
	return "Service"
}

// DraftCategory maps a history kind to the draft flow that tracks it.
func (k BookingKind) DraftCategory() Category {
	switch k {
	case KindCleaning:
		return CategoryCleaning
	case KindHandyman:
		return CategoryHandyman
	case KindBeauty, KindBeautyProducts:
		return CategoryBeauty
	case KindRental:
		return CategoryRental
	case KindCareRide:
		return CategoryCareRide
	case KindCareCompanion:
		return CategoryCareCompanion
	}
	return CategoryNone
}
