package session

import "github.com/soukapp/souk/internal/catalog"

// Patch is one typed, field-wise state mutation. Patches replace the ad-hoc
// object merges of the original wireframes: only fields relevant to the
// destination screen can be touched on a transition, and every mutation path
// is enumerable and testable.
type Patch interface {
	apply(s *State)
}

// --- identity -------------------------------------------------------------

// SetIdentity sets the signed-in user's email and display name.
type SetIdentity struct {
	Email string
	Name  string
}

func (p SetIdentity) apply(s *State) {
	s.Email = p.Email
	s.Name = p.Name
}

// SetLocation sets the free-text current location string.
type SetLocation struct{ Location string }

func (p SetLocation) apply(s *State) { s.Location = p.Location }

// --- catalog selections ---------------------------------------------------

// SelectVendor stages the vendor a detail screen is about to show.
type SelectVendor struct{ Vendor *catalog.Vendor }

func (p SelectVendor) apply(s *State) { s.SelectedVendor = p.Vendor }

// SelectService stages the service a detail screen is about to show.
type SelectService struct{ Service *catalog.Service }

func (p SelectService) apply(s *State) { s.SelectedService = p.Service }

// SelectItem stages the catalog item a detail screen is about to show.
type SelectItem struct{ Item *catalog.Item }

func (p SelectItem) apply(s *State) { s.SelectedItem = p.Item }

// SelectProperty stages the rental property a detail screen is about to show.
type SelectProperty struct{ Property *catalog.Property }

func (p SelectProperty) apply(s *State) { s.SelectedProperty = p.Property }

// SelectRideProvider stages the ride provider a detail screen is about to show.
type SelectRideProvider struct{ Provider *catalog.RideProvider }

func (p SelectRideProvider) apply(s *State) { s.SelectedRideProvider = p.Provider }

// SelectCompanion stages the companion a detail screen is about to show.
type SelectCompanion struct{ Companion *catalog.Companion }

func (p SelectCompanion) apply(s *State) { s.SelectedCompanion = p.Companion }

// --- address book ---------------------------------------------------------

// PutAddress inserts or replaces an address by ID. Exactly one default is
// enforced on write: a default flag here clears every other default, and the
// first address ever added becomes default.
type PutAddress struct{ Address Address }

func (p PutAddress) apply(s *State) {
	a := p.Address
	if len(s.Addresses) == 0 {
		a.IsDefault = true
	}
	replaced := false
	for i := range s.Addresses {
		if s.Addresses[i].ID == a.ID {
			s.Addresses[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		s.Addresses = append(s.Addresses, a)
	}
	if a.IsDefault {
		clearOtherAddressDefaults(s, a.ID)
	}
	ensureAddressDefault(s)
}

// RemoveAddress deletes an address; if it was the default, the first
// remaining address is promoted.
type RemoveAddress struct{ ID string }

func (p RemoveAddress) apply(s *State) {
	out := s.Addresses[:0]
	for _, a := range s.Addresses {
		if a.ID != p.ID {
			out = append(out, a)
		}
	}
	s.Addresses = out
	if s.SelectedAddressID == p.ID {
		s.SelectedAddressID = ""
	}
	ensureAddressDefault(s)
}

// SetDefaultAddress marks one address default and clears the rest.
type SetDefaultAddress struct{ ID string }

func (p SetDefaultAddress) apply(s *State) {
	for i := range s.Addresses {
		s.Addresses[i].IsDefault = s.Addresses[i].ID == p.ID
	}
}

// SelectAddress records the currently selected address id.
type SelectAddress struct{ ID string }

func (p SelectAddress) apply(s *State) { s.SelectedAddressID = p.ID }

func clearOtherAddressDefaults(s *State, keepID string) {
	for i := range s.Addresses {
		if s.Addresses[i].ID != keepID {
			s.Addresses[i].IsDefault = false
		}
	}
}

func ensureAddressDefault(s *State) {
	if len(s.Addresses) == 0 {
		return
	}
	for i := range s.Addresses {
		if s.Addresses[i].IsDefault {
			return
		}
	}
	s.Addresses[0].IsDefault = true
}

// --- payment methods ------------------------------------------------------

// PutCard inserts or replaces a card by ID, with the same single-default
// enforcement as addresses.
type PutCard struct{ Card PaymentCard }

func (p PutCard) apply(s *State) {
	c := p.Card
	if len(s.Cards) == 0 {
		c.IsDefault = true
	}
	replaced := false
	for i := range s.Cards {
		if s.Cards[i].ID == c.ID {
			s.Cards[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		s.Cards = append(s.Cards, c)
	}
	if c.IsDefault {
		for i := range s.Cards {
			if s.Cards[i].ID != c.ID {
				s.Cards[i].IsDefault = false
			}
		}
	}
	ensureCardDefault(s)
}

// RemoveCard deletes a card; the first remaining card is promoted if the
// default was removed.
type RemoveCard struct{ ID string }

func (p RemoveCard) apply(s *State) {
	out := s.Cards[:0]
	for _, c := range s.Cards {
		if c.ID != p.ID {
			out = append(out, c)
		}
	}
	s.Cards = out
	ensureCardDefault(s)
}

// SetDefaultCard marks one card default and clears the rest.
type SetDefaultCard struct{ ID string }

func (p SetDefaultCard) apply(s *State) {
	for i := range s.Cards {
		s.Cards[i].IsDefault = s.Cards[i].ID == p.ID
	}
}

func ensureCardDefault(s *State) {
	if len(s.Cards) == 0 {
		return
	}
	for i := range s.Cards {
		if s.Cards[i].IsDefault {
			return
		}
	}
	s.Cards[0].IsDefault = true
}

// --- booking drafts -------------------------------------------------------

// SetDraft installs the live draft and its category discriminator.
type SetDraft struct{ Draft Draft }

func (p SetDraft) apply(s *State) {
	d := p.Draft
	s.Draft = &d
	s.CurrentBookingType = d.Category
}

// ClearDraft drops the live draft after finalization or abandonment.
type ClearDraft struct{}

func (p ClearDraft) apply(s *State) {
	s.Draft = nil
	s.CurrentBookingType = CategoryNone
}

// AppendBooking appends a finalized record to the history. The history is
// append-only; records are never removed.
type AppendBooking struct{ Booking Booking }

func (p AppendBooking) apply(s *State) {
	s.Bookings = append(s.Bookings, p.Booking)
}

// MarkBookingReviewed flips hasReview on one history entry and stores the
// submitted rating and comment.
type MarkBookingReviewed struct {
	ID      string
	Rating  int
	Comment string
}

func (p MarkBookingReviewed) apply(s *State) {
	for i := range s.Bookings {
		if s.Bookings[i].ID == p.ID {
			s.Bookings[i].HasReview = true
			s.Bookings[i].Rating = p.Rating
			s.Bookings[i].Review = p.Comment
			return
		}
	}
}

// --- carts ----------------------------------------------------------------
// These patches are the raw cart mutations; the single-vendor rule lives in
// PlanCartAdd (cart.go), which decides which patches a given add translates
// into. Screens go through the plan, never through AddCartItem directly when
// a vendor conflict is possible.

// AddCartItem appends a line (or increments its quantity) and records the
// vendor binding.
type AddCartItem struct {
	Kind       CartKind
	VendorID   string
	VendorName string
	Line       CartLine
}

func (p AddCartItem) apply(s *State) {
	c := s.Cart(p.Kind)
	c.VendorID = p.VendorID
	c.VendorName = p.VendorName
	for i := range c.Lines {
		if c.Lines[i].ItemID == p.Line.ItemID {
			c.Lines[i].Qty++
			return
		}
	}
	line := p.Line
	if line.Qty <= 0 {
		line.Qty = 1
	}
	c.Lines = append(c.Lines, line)
}

// ReplaceCart discards the cart contents and starts a fresh single-line cart
// bound to the new vendor.
type ReplaceCart struct {
	Kind       CartKind
	VendorID   string
	VendorName string
	Line       CartLine
}

func (p ReplaceCart) apply(s *State) {
	line := p.Line
	if line.Qty <= 0 {
		line.Qty = 1
	}
	s.Carts[p.Kind] = &Cart{VendorID: p.VendorID, VendorName: p.VendorName, Lines: []CartLine{line}}
}

// DecrementCartItem lowers a line's quantity by one, removing the line at
// zero; an emptied cart loses its vendor binding so the next add starts
// fresh.
type DecrementCartItem struct {
	Kind   CartKind
	ItemID string
}

func (p DecrementCartItem) apply(s *State) {
	c := s.Cart(p.Kind)
	for i := range c.Lines {
		if c.Lines[i].ItemID != p.ItemID {
			continue
		}
		c.Lines[i].Qty--
		if c.Lines[i].Qty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		break
	}
	if len(c.Lines) == 0 {
		c.VendorID = ""
		c.VendorName = ""
	}
}

// ClearCart empties one cart including its vendor binding.
type ClearCart struct{ Kind CartKind }

func (p ClearCart) apply(s *State) {
	s.Carts[p.Kind] = &Cart{}
}

// StageCartAction stages a cross-vendor add pending the warning decision.
type StageCartAction struct{ Action PendingCartAction }

func (p StageCartAction) apply(s *State) {
	a := p.Action
	s.PendingAction = &a
}

// ClearCartAction drops the staged action without touching any cart.
type ClearCartAction struct{}

func (p ClearCartAction) apply(s *State) { s.PendingAction = nil }

// --- notifications --------------------------------------------------------

// PushNotification prepends a notification.
type PushNotification struct{ Notification Notification }

func (p PushNotification) apply(s *State) {
	s.Notifications = append([]Notification{p.Notification}, s.Notifications...)
}

// MarkNotificationRead marks one notification read. Idempotent.
type MarkNotificationRead struct{ ID string }

func (p MarkNotificationRead) apply(s *State) {
	for i := range s.Notifications {
		if s.Notifications[i].ID == p.ID {
			s.Notifications[i].Read = true
			return
		}
	}
}

// ClearNotifications empties the notification list.
type ClearNotifications struct{}

func (p ClearNotifications) apply(s *State) { s.Notifications = nil }

// --- misc -----------------------------------------------------------------

// SetSearchQuery records the shared search input.
type SetSearchQuery struct{ Query string }

func (p SetSearchQuery) apply(s *State) { s.SearchQuery = p.Query }

// ToggleFavorite flips a vendor's membership in the favorites set.
type ToggleFavorite struct{ VendorID string }

func (p ToggleFavorite) apply(s *State) {
	if s.Favorites == nil {
		s.Favorites = map[string]bool{}
	}
	if s.Favorites[p.VendorID] {
		delete(s.Favorites, p.VendorID)
	} else {
		s.Favorites[p.VendorID] = true
	}
}
