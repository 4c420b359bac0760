package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/soukapp/souk/internal/session"
)

func TestFinalizeDraftProducesAcceptedBooking(t *testing.T) {
	t.Parallel()

	svc := &BookingService{}
	d := session.Draft{
		Category: session.CategoryCleaning,
		Vendor:   session.VendorRef{ID: "v1", Name: "Sparkle Homes", Rating: 4.9},
		Service:  session.ServiceRef{ID: "s1", Name: "Deep Cleaning", Price: decimal.NewFromInt(85)},
		Address:  session.Address{Label: "Home", Street: "24 Acacia Ave", City: "Nairobi"},
		Payment:  session.PaymentCard{Brand: "Visa", Last4: "4242"},
		Schedule: session.Schedule{Date: "2026-09-05", Time: "09:00"},
		Total:    decimal.NewFromInt(85),
		Cleaning: &session.CleaningDetails{Bedrooms: 2, Bathrooms: 1},
	}

	b := svc.FinalizeDraft(d)
	require.NotEmpty(t, b.ID)
	require.Equal(t, session.KindCleaning, b.Kind)
	require.Equal(t, session.StatusAccepted, b.Status)
	require.False(t, b.HasReview)
	require.Equal(t, "Sparkle Homes", b.Vendor.Name)
	require.Equal(t, "85", b.Total.String())
	require.False(t, b.CreatedAt.IsZero())

	// Every call mints a fresh record.
	require.NotEqual(t, b.ID, svc.FinalizeDraft(d).ID)
}

func TestFinalizeOrderCopiesCartLines(t *testing.T) {
	t.Parallel()

	svc := &BookingService{}
	cart := session.Cart{
		VendorID:   "v1",
		VendorName: "Mama Oliech",
		Lines: []session.CartLine{
			{ItemID: "i1", Name: "Whole Tilapia", UnitPrice: decimal.NewFromInt(14), Qty: 1},
			{ItemID: "i2", Name: "Ugali", UnitPrice: decimal.NewFromInt(3), Qty: 2},
		},
	}

	b := svc.FinalizeOrder(session.CartFood, cart, session.Address{Label: "Home"}, session.PaymentCard{Last4: "4242"})
	require.Equal(t, session.KindFood, b.Kind)
	require.Equal(t, "20", b.Total.String())
	require.Len(t, b.Items, 2)

	// The record must not alias the live cart.
	cart.Lines[0].Qty = 99
	require.Equal(t, 1, b.Items[0].Qty)
}

func TestConfirmationNotificationWording(t *testing.T) {
	t.Parallel()

	svc := &BookingService{}

	order := svc.ConfirmationNotification(session.Booking{Kind: session.KindFood,
		Vendor: session.VendorRef{Name: "Mama Oliech"}, Service: session.ServiceRef{Name: "Order (2 items)"}})
	require.Equal(t, "Order placed", order.Title)
	require.Equal(t, "order", order.Kind)

	booking := svc.ConfirmationNotification(session.Booking{Kind: session.KindCleaning,
		Vendor: session.VendorRef{Name: "Sparkle Homes"}, Service: session.ServiceRef{Name: "Deep Cleaning"}})
	require.Equal(t, "Booking confirmed", booking.Title)
	require.Equal(t, "booking", booking.Kind)
	require.Contains(t, booking.Message, "Sparkle Homes")
}

func TestPaymentSimulatorTokens(t *testing.T) {
	t.Parallel()

	p := &PaymentSimulator{Delay: 5 * time.Millisecond}
	a, b := p.Begin(), p.Begin()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
	require.Equal(t, 5*time.Millisecond, p.ProcessingDelay())
	p.ReportStale(a) // nil logger must be safe

	require.Equal(t, DefaultPaymentDelay, (&PaymentSimulator{}).ProcessingDelay())
}
