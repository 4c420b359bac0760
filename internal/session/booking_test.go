package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBookingStructuredFieldsPassThrough(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seed := BookingSeed{
		ID:        "b1",
		Kind:      KindCleaning,
		Status:    StatusCompleted,
		Vendor:    &VendorRef{ID: "v1", Name: "Sparkle Homes", Rating: 4.9},
		Service:   &ServiceRef{ID: "s1", Name: "Deep Clean", Price: decimal.NewFromInt(80), DurationMin: 180},
		Address:   &Address{ID: "a1", Label: "Home", Street: "12 Rose Ave", City: "Nairobi"},
		Date:      "2026-08-03",
		Time:      "09:00",
		Total:     "80",
		CreatedAt: created,
	}

	b, rep := NormalizeBooking(seed)
	require.True(t, rep.Clean(), "structured seed must not synthesize: %v", rep.Fields())
	require.Equal(t, "Sparkle Homes", b.Vendor.Name)
	require.Equal(t, "Deep Clean", b.Service.Name)
	require.Equal(t, "12 Rose Ave", b.Address.Street)
	require.True(t, b.Total.Equal(decimal.NewFromInt(80)))
	require.Equal(t, created, b.CreatedAt)
}

func TestNormalizeBookingStringOnlySeed(t *testing.T) {
	t.Parallel()

	seed := BookingSeed{
		ID:          "b2",
		Kind:        KindHandyman,
		VendorText:  "FixIt Bros",
		ServiceText: "Leaky tap",
		AddressText: "45 Moi Ave, Nairobi",
		Date:        "2026-08-10",
		Total:       "35.50",
	}

	b, rep := NormalizeBooking(seed)
	require.False(t, rep.Clean())
	require.ElementsMatch(t, []string{"status", "createdAt", "vendor", "service", "address"}, rep.Fields())

	require.Equal(t, StatusAccepted, b.Status)
	require.Equal(t, "FixIt Bros", b.Vendor.Name)
	require.Equal(t, "Leaky tap", b.Service.Name)
	require.Equal(t, "45 Moi Ave, Nairobi", b.Address.Label)
	require.True(t, b.Total.Equal(decimal.RequireFromString("35.50")))
	require.False(t, b.CreatedAt.IsZero())
}

func TestNormalizeBookingIsTotalOnEmptySeed(t *testing.T) {
	t.Parallel()

	b, rep := NormalizeBooking(BookingSeed{ID: "b3", Kind: KindBeauty})
	require.False(t, rep.Clean())
	require.NotEmpty(t, b.Vendor.Name)
	require.NotEmpty(t, b.Service.Name)
	require.NotEmpty(t, b.Address.Label)
	require.Equal(t, StatusAccepted, b.Status)
	require.True(t, b.Total.IsZero())
}

func TestNormalizeBookingUnparseableTotal(t *testing.T) {
	t.Parallel()

	b, rep := NormalizeBooking(BookingSeed{
		ID:     "b4",
		Kind:   KindFood,
		Vendor: &VendorRef{Name: "Mama Njeri Kitchen"},
		Total:  "twelve dollars",
	})
	require.True(t, b.Total.IsZero())
	require.Contains(t, rep.Fields(), "total")
}

func TestNormalizeBookingTotalFromItems(t *testing.T) {
	t.Parallel()

	b, _ := NormalizeBooking(BookingSeed{
		ID:   "b5",
		Kind: KindGrocery,
		Items: []CartLine{
			{ItemID: "i1", Name: "Sukuma", UnitPrice: decimal.NewFromInt(3), Qty: 2},
			{ItemID: "i2", Name: "Unga", UnitPrice: decimal.NewFromInt(5), Qty: 1},
		},
	})
	require.True(t, b.Total.Equal(decimal.NewFromInt(11)))
}

func TestAdaptBookingCoversEveryCategory(t *testing.T) {
	t.Parallel()

	kinds := []struct {
		kind BookingKind
		want Category
	}{
		{KindCleaning, CategoryCleaning},
		{KindHandyman, CategoryHandyman},
		{KindBeauty, CategoryBeauty},
		{KindRental, CategoryRental},
		{KindCareRide, CategoryCareRide},
		{KindCareCompanion, CategoryCareCompanion},
	}
	for _, tc := range kinds {
		b, _ := NormalizeBooking(BookingSeed{ID: "x-" + string(tc.kind), Kind: tc.kind})
		d, rep := AdaptBooking(b, nil)
		require.Equal(t, tc.want, d.Category, "kind %s", tc.kind)
		require.NotNil(t, d.Payload(), "kind %s must carry a payload", tc.kind)
		require.False(t, rep.Clean(), "bare record must report synthesis")
	}
}

func TestAdaptBookingRoutesOrdersThroughProductFlow(t *testing.T) {
	t.Parallel()

	for _, kind := range []BookingKind{KindFood, KindGrocery} {
		b, _ := NormalizeBooking(BookingSeed{
			ID:   "o-" + string(kind),
			Kind: kind,
			Items: []CartLine{
				{ItemID: "i1", Name: "Pilau", UnitPrice: decimal.NewFromInt(12), Qty: 1},
			},
		})
		d, rep := AdaptBooking(b, nil)
		require.Equal(t, CategoryBeauty, d.Category)
		require.NotNil(t, d.Beauty)
		require.Equal(t, []string{"i1"}, d.Beauty.ProductIDs)
		require.Contains(t, rep.Fields(), "category")
	}
}

func TestAdaptBookingUsesFallbackCard(t *testing.T) {
	t.Parallel()

	b, _ := NormalizeBooking(BookingSeed{ID: "b6", Kind: KindCleaning})
	card := &PaymentCard{ID: "c1", Brand: "Visa", Last4: "4242", IsDefault: true}

	d, rep := AdaptBooking(b, card)
	require.Equal(t, "c1", d.Payment.ID)
	require.Contains(t, rep.Fields(), "payment")

	// Without a fallback the payment is still renderable.
	d2, _ := AdaptBooking(b, nil)
	require.NotEmpty(t, d2.Payment.Brand)
	require.NotEmpty(t, d2.Payment.Last4)
}

func TestAdaptBookingKeepsStructuredData(t *testing.T) {
	t.Parallel()

	b := Booking{
		ID:      "b7",
		Kind:    KindRental,
		Status:  StatusAccepted,
		Vendor:  VendorRef{ID: "p1", Name: "Hilltop Cottage", Rating: 4.7},
		Service: ServiceRef{Name: "3-night stay", Price: decimal.NewFromInt(210), DurationMin: 1},
		Address: Address{Label: "Hilltop Cottage", Street: "Naivasha"},
		Payment: PaymentCard{ID: "c1", Brand: "Visa", Last4: "4242"},
		Schedule: Schedule{
			Date: "2026-09-04", EndDate: "2026-09-07",
		},
		Total: decimal.NewFromInt(210),
	}

	d, rep := AdaptBooking(b, nil)
	require.Equal(t, "Hilltop Cottage", d.Vendor.Name)
	require.Equal(t, "c1", d.Payment.ID)
	require.NotNil(t, d.Rental)
	require.Equal(t, "2026-09-04", d.Rental.CheckIn)
	require.Equal(t, "2026-09-07", d.Rental.CheckOut)
	// Only the payload defaults should be reported.
	for _, f := range rep.Fields() {
		require.NotContains(t, []string{"vendor.rating", "payment", "address"}, f)
	}
}

func TestDraftKindDiscriminatesBeautyProducts(t *testing.T) {
	t.Parallel()

	d := Draft{Category: CategoryBeauty, Beauty: &BeautyDetails{}}
	require.Equal(t, KindBeauty, d.Kind())

	d.Beauty.ProductIDs = []string{"i1"}
	require.Equal(t, KindBeautyProducts, d.Kind())
}

func TestDraftCategoryRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		d := Draft{Category: c}
		if c == CategoryBeauty {
			d.Beauty = &BeautyDetails{}
		}
		require.Equal(t, c, d.Kind().DraftCategory(), "category %s", c)
	}
}
