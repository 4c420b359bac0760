package session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soukapp/souk/internal/catalog"
)

// Address is a structured address book entry.
type Address struct {
	ID        string
	Label     string
	Kind      string // "home", "work", "other"
	Street    string
	City      string
	State     string
	Zip       string
	IsDefault bool
}

// Display renders the single-line form used across screens.
func (a Address) Display() string {
	if a.Street == "" {
		return a.Label
	}
	out := a.Street
	if a.City != "" {
		out += ", " + a.City
	}
	if a.State != "" {
		out += ", " + a.State
	}
	if a.Zip != "" {
		out += " " + a.Zip
	}
	return out
}

// PaymentCard is a saved payment method. Card numbers are never stored;
// this is a wireframe, last4 is display data only.
type PaymentCard struct {
	ID        string
	Brand     string
	Last4     string
	Holder    string
	Expiry    string
	Label     string
	IsDefault bool
}

// CartKind keys the three independent carts.
type CartKind string

const (
	CartFood           CartKind = "food"
	CartGrocery        CartKind = "grocery"
	CartBeautyProducts CartKind = "beautyProducts"
)

// CartLine is one cart line item.
type CartLine struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
}

// Cart holds the lines for one cart kind plus its vendor binding. A non-empty
// cart always has exactly one vendor binding; an empty cart has none.
type Cart struct {
	VendorID   string
	VendorName string
	Lines      []CartLine
}

// Subtotal sums unit price times quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool { return len(c.Lines) == 0 }

// PendingCartAction stages a cross-vendor add awaiting the user's decision on
// the replacement warning screen.
type PendingCartAction struct {
	Kind       CartKind
	VendorID   string
	VendorName string
	Line       CartLine
	ReturnTo   Screen
}

// Notification is one notification center entry.
type Notification struct {
	ID        string
	Kind      string // "booking", "order", "promo", "system"
	Title     string
	Message   string
	Timestamp string // display text, e.g. "2 hours ago"
	Read      bool
}

// Schedule is the when of a booking.
type Schedule struct {
	Date      string // "2006-01-02"
	Time      string // "15:04" or a window label
	EndDate   string // rentals only
	Recurring string // "", "weekly", "biweekly", "monthly"
}

// VendorRef is the vendor slice carried by drafts and booking records.
type VendorRef struct {
	ID     string
	Name   string
	Rating float64
	Area   string
}

// ServiceRef is the service slice carried by drafts and booking records.
type ServiceRef struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	DurationMin int
}

// State is the single shared session record. It is created once at startup,
// read by whichever screen is current, and mutated only through patches
// applied by Store.Navigate.
type State struct {
	// Identity.
	Email    string
	Name     string
	Location string

	// Address book and payment methods.
	Addresses         []Address
	SelectedAddressID string
	Cards             []PaymentCard

	// Transient catalog selections, populated immediately before
	// navigating to the corresponding detail screen.
	SelectedVendor       *catalog.Vendor
	SelectedService      *catalog.Service
	SelectedItem         *catalog.Item
	SelectedProperty     *catalog.Property
	SelectedRideProvider *catalog.RideProvider
	SelectedCompanion    *catalog.Companion

	// Carts.
	Carts         map[CartKind]*Cart
	PendingAction *PendingCartAction

	// Booking drafts. Only one booking flow is mid-flight at a time;
	// CurrentBookingType says which.
	Draft              *Draft
	CurrentBookingType Category

	// Finalized bookings, append-only.
	Bookings []Booking

	// Notifications.
	Notifications []Notification

	// Misc UI state shared across screens.
	SearchQuery string
	Favorites   map[string]bool // vendor id set
}

// NewState returns an empty state with initialized containers.
func NewState() *State {
	return &State{
		Carts: map[CartKind]*Cart{
			CartFood:           {},
			CartGrocery:        {},
			CartBeautyProducts: {},
		},
		Favorites: map[string]bool{},
	}
}

// Cart returns the cart for kind, creating it if missing.
func (s *State) Cart(kind CartKind) *Cart {
	if s.Carts == nil {
		s.Carts = map[CartKind]*Cart{}
	}
	c, ok := s.Carts[kind]
	if !ok {
		c = &Cart{}
		s.Carts[kind] = c
	}
	return c
}

// DefaultAddress returns the address flagged default, or nil.
func (s *State) DefaultAddress() *Address {
	for i := range s.Addresses {
		if s.Addresses[i].IsDefault {
			return &s.Addresses[i]
		}
	}
	return nil
}

// DefaultCard returns the card flagged default, or nil.
func (s *State) DefaultCard() *PaymentCard {
	for i := range s.Cards {
		if s.Cards[i].IsDefault {
			return &s.Cards[i]
		}
	}
	return nil
}

// UnreadCount is always derived from the notification list, never cached.
func (s *State) UnreadCount() int {
	n := 0
	for _, nt := range s.Notifications {
		if !nt.Read {
			n++
		}
	}
	return n
}

// BookingByID returns the history entry with the given id, or nil.
func (s *State) BookingByID(id string) *Booking {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			return &s.Bookings[i]
		}
	}
	return nil
}

// Now is overridable in tests.
var Now = func() time.Time { return time.Now().UTC() }
