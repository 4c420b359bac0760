package session

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func seedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("seed:"+name)).String()
}

// NewSeededState builds the demo session the app starts with: a signed-in
// user, two addresses, two cards, some history (deliberately including
// loose string-only entries so the normalizer path is exercised on real
// data) and a few notifications.
func NewSeededState(email, name, location string) *State {
	s := NewState()
	s.Email = email
	s.Name = name
	s.Location = location

	s.Addresses = []Address{
		{ID: seedID("addr-home"), Label: "Home", Kind: "home", Street: "24 Acacia Ave", City: "Nairobi", State: "Nairobi", Zip: "00100", IsDefault: true},
		{ID: seedID("addr-work"), Label: "Work", Kind: "work", Street: "Westlands Rd, Delta Towers", City: "Nairobi", State: "Nairobi", Zip: "00800"},
	}
	s.SelectedAddressID = s.Addresses[0].ID

	s.Cards = []PaymentCard{
		{ID: seedID("card-visa"), Brand: "Visa", Last4: "4242", Holder: name, Expiry: "12/27", Label: "Personal", IsDefault: true},
		{ID: seedID("card-mc"), Brand: "Mastercard", Last4: "8810", Holder: name, Expiry: "03/26", Label: "Business"},
	}

	now := Now()
	seeds := []BookingSeed{
		{
			ID:     seedID("bk-cleaning"),
			Kind:   KindCleaning,
			Status: StatusCompleted,
			Vendor: &VendorRef{ID: seedID("v-sparkle"), Name: "Sparkle Homes", Rating: 4.9},
			Service: &ServiceRef{
				ID: seedID("sv-deep"), Name: "Deep Cleaning",
				Price: decimal.NewFromInt(85), DurationMin: 180,
			},
			Address:   &Address{Label: "Home", Street: "24 Acacia Ave", City: "Nairobi"},
			Date:      now.AddDate(0, 0, -21).Format("2006-01-02"),
			Time:      "09:00",
			Total:     "85",
			HasReview: true,
			CreatedAt: now.AddDate(0, 0, -21),
		},
		{
			// Loose legacy entry: string everything.
			ID:          seedID("bk-handyman"),
			Kind:        KindHandyman,
			Status:      StatusCompleted,
			VendorText:  "FixItFred",
			ServiceText: "Leaky faucet repair",
			AddressText: "24 Acacia Ave, Nairobi",
			Date:        now.AddDate(0, 0, -10).Format("2006-01-02"),
			Time:        "14:00",
			Total:       "40",
			CreatedAt:   now.AddDate(0, 0, -10),
		},
		{
			ID:         seedID("bk-food"),
			Kind:       KindFood,
			Status:     StatusCompleted,
			VendorText: "Mama Oliech",
			Items: []CartLine{
				{ItemID: seedID("it-fish"), Name: "Whole Tilapia", UnitPrice: decimal.NewFromInt(14), Qty: 1},
				{ItemID: seedID("it-ugali"), Name: "Ugali", UnitPrice: decimal.NewFromInt(3), Qty: 2},
			},
			AddressText: "Westlands Rd, Delta Towers",
			Date:        now.AddDate(0, 0, -3).Format("2006-01-02"),
			Time:        "19:30",
			CreatedAt:   now.AddDate(0, 0, -3),
		},
		{
			// Upcoming rental, structured.
			ID:     seedID("bk-rental"),
			Kind:   KindRental,
			Status: StatusAccepted,
			Vendor: &VendorRef{ID: seedID("v-karen"), Name: "Karen Garden Cottage", Rating: 4.7},
			Service: &ServiceRef{
				ID: seedID("sv-stay"), Name: "2-night stay", Price: decimal.NewFromInt(120),
			},
			Address:   &Address{Label: "Karen Garden Cottage", Street: "Karen Rd 17", City: "Nairobi"},
			Date:      now.AddDate(0, 0, 7).Format("2006-01-02"),
			EndDate:   now.AddDate(0, 0, 9).Format("2006-01-02"),
			Total:     "240",
			CreatedAt: now.AddDate(0, 0, -1),
		},
	}
	for _, seed := range seeds {
		b, _ := NormalizeBooking(seed)
		s.Bookings = append(s.Bookings, b)
	}

	s.Notifications = []Notification{
		{ID: seedID("nt-rental"), Kind: "booking", Title: "Booking confirmed", Message: "Your stay at Karen Garden Cottage is confirmed.", Timestamp: "1 day ago"},
		{ID: seedID("nt-promo"), Kind: "promo", Title: "Weekend offer", Message: "20% off deep cleaning this weekend.", Timestamp: "2 days ago"},
		{ID: seedID("nt-review"), Kind: "system", Title: "Rate your repair", Message: "How was FixItFred? Leave a review.", Timestamp: "1 week ago", Read: true},
	}

	return s
}

// NewNotification builds a notification with a fresh id and a relative
// timestamp label.
func NewNotification(kind, title, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		Timestamp: "just now",
	}
}
