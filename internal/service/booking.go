package service

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soukapp/souk/internal/session"
)

// BookingService finalizes drafts and cart checkouts into history records.
// Records always enter the history in canonical structured form; nothing here
// re-parses display strings.
type BookingService struct {
	Log *zap.Logger
}

// FinalizeDraft converts the live draft into an accepted, unreviewed booking.
func (s *BookingService) FinalizeDraft(d session.Draft) session.Booking {
	b := session.Booking{
		ID:        uuid.NewString(),
		Kind:      d.Kind(),
		Status:    session.StatusAccepted,
		Vendor:    d.Vendor,
		Service:   d.Service,
		Address:   d.Address,
		Payment:   d.Payment,
		Schedule:  d.Schedule,
		Total:     d.Total,
		CreatedAt: session.Now(),
	}
	if s.Log != nil {
		s.Log.Info("booking finalized",
			zap.String("id", b.ID),
			zap.String("kind", string(b.Kind)),
			zap.String("total", b.Total.String()))
	}
	return b
}

// FinalizeOrder converts a checked-out cart into an accepted order record.
func (s *BookingService) FinalizeOrder(kind session.CartKind, cart session.Cart, addr session.Address, card session.PaymentCard) session.Booking {
	lines := make([]session.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	b := session.Booking{
		ID:     uuid.NewString(),
		Kind:   session.OrderKind(kind),
		Status: session.StatusAccepted,
		Vendor: session.VendorRef{ID: cart.VendorID, Name: cart.VendorName},
		Service: session.ServiceRef{
			Name: fmt.Sprintf("Order (%d items)", len(lines)),
		},
		Address:   addr,
		Payment:   card,
		Items:     lines,
		Total:     cart.Subtotal(),
		CreatedAt: session.Now(),
	}
	if s.Log != nil {
		s.Log.Info("order finalized",
			zap.String("id", b.ID),
			zap.String("kind", string(b.Kind)),
			zap.Int("items", len(lines)),
			zap.String("total", b.Total.String()))
	}
	return b
}

// ConfirmationNotification builds the notification pushed alongside a
// finalized record.
func (s *BookingService) ConfirmationNotification(b session.Booking) session.Notification {
	title := "Booking confirmed"
	kind := "booking"
	switch b.Kind {
	case session.KindFood, session.KindGrocery, session.KindBeautyProducts:
		title = "Order placed"
		kind = "order"
	}
	msg := fmt.Sprintf("%s with %s is confirmed.", b.Service.Name, b.Vendor.Name)
	return session.NewNotification(kind, title, msg)
}
