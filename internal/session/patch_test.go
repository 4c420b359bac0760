package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func defaultCount(addrs []Address) int {
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	t.Parallel()

	s := NewState()
	(PutAddress{Address: Address{ID: "a1", Label: "Home"}}).apply(s)

	require.Len(t, s.Addresses, 1)
	require.True(t, s.Addresses[0].IsDefault)
}

func TestAddressDefaultStaysSingleOnWrite(t *testing.T) {
	t.Parallel()

	s := NewState()
	(PutAddress{Address: Address{ID: "a1", Label: "Home"}}).apply(s)
	(PutAddress{Address: Address{ID: "a2", Label: "Work", IsDefault: true}}).apply(s)

	require.Len(t, s.Addresses, 2)
	require.Equal(t, 1, defaultCount(s.Addresses))
	require.Equal(t, "a2", s.DefaultAddress().ID)

	(SetDefaultAddress{ID: "a1"}).apply(s)
	require.Equal(t, 1, defaultCount(s.Addresses))
	require.Equal(t, "a1", s.DefaultAddress().ID)
}

func TestRemovingDefaultAddressPromotesAnother(t *testing.T) {
	t.Parallel()

	s := NewState()
	(PutAddress{Address: Address{ID: "a1", Label: "Home"}}).apply(s)
	(PutAddress{Address: Address{ID: "a2", Label: "Work"}}).apply(s)
	require.Equal(t, "a1", s.DefaultAddress().ID)

	(RemoveAddress{ID: "a1"}).apply(s)
	require.Len(t, s.Addresses, 1)
	require.NotNil(t, s.DefaultAddress())
	require.Equal(t, "a2", s.DefaultAddress().ID)
}

func TestPutAddressReplacesExistingByID(t *testing.T) {
	t.Parallel()

	s := NewState()
	(PutAddress{Address: Address{ID: "a1", Label: "Home", Street: "1 Elm"}}).apply(s)
	(PutAddress{Address: Address{ID: "a1", Label: "Home", Street: "2 Oak", IsDefault: true}}).apply(s)

	require.Len(t, s.Addresses, 1)
	require.Equal(t, "2 Oak", s.Addresses[0].Street)
	require.Equal(t, 1, defaultCount(s.Addresses))
}

func TestCardDefaultInvariant(t *testing.T) {
	t.Parallel()

	s := NewState()
	(PutCard{Card: PaymentCard{ID: "c1", Brand: "Visa", Last4: "4242"}}).apply(s)
	require.True(t, s.Cards[0].IsDefault)

	(PutCard{Card: PaymentCard{ID: "c2", Brand: "Mastercard", Last4: "4444", IsDefault: true}}).apply(s)
	require.Equal(t, "c2", s.DefaultCard().ID)

	single := 0
	for _, c := range s.Cards {
		if c.IsDefault {
			single++
		}
	}
	require.Equal(t, 1, single)

	(RemoveCard{ID: "c2"}).apply(s)
	require.NotNil(t, s.DefaultCard())
	require.Equal(t, "c1", s.DefaultCard().ID)
}

func TestUnreadCountIsDerived(t *testing.T) {
	t.Parallel()

	s := NewState()
	require.Equal(t, 0, s.UnreadCount())

	(PushNotification{Notification: Notification{ID: "n1", Title: "a"}}).apply(s)
	(PushNotification{Notification: Notification{ID: "n2", Title: "b"}}).apply(s)
	(PushNotification{Notification: Notification{ID: "n3", Title: "c", Read: true}}).apply(s)
	require.Equal(t, 2, s.UnreadCount())

	// Newest first.
	require.Equal(t, "n3", s.Notifications[0].ID)

	(MarkNotificationRead{ID: "n1"}).apply(s)
	require.Equal(t, 1, s.UnreadCount())

	// Idempotent.
	(MarkNotificationRead{ID: "n1"}).apply(s)
	require.Equal(t, 1, s.UnreadCount())

	// Unknown id is a no-op.
	(MarkNotificationRead{ID: "missing"}).apply(s)
	require.Equal(t, 1, s.UnreadCount())

	(ClearNotifications{}).apply(s)
	require.Empty(t, s.Notifications)
	require.Equal(t, 0, s.UnreadCount())
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	s := NewState()
	(ToggleFavorite{VendorID: "v1"}).apply(s)
	require.True(t, s.Favorites["v1"])

	(ToggleFavorite{VendorID: "v1"}).apply(s)
	require.False(t, s.Favorites["v1"])
}

func TestMarkBookingReviewed(t *testing.T) {
	t.Parallel()

	s := NewState()
	(AppendBooking{Booking: Booking{ID: "b1", Kind: KindCleaning, Status: StatusAccepted}}).apply(s)

	(MarkBookingReviewed{ID: "b1", Rating: 4, Comment: "great"}).apply(s)
	b := s.BookingByID("b1")
	require.NotNil(t, b)
	require.True(t, b.HasReview)
	require.Equal(t, 4, b.Rating)
	require.Equal(t, "great", b.Review)
}

func TestAppendBookingIsAppendOnly(t *testing.T) {
	t.Parallel()

	s := NewState()
	(AppendBooking{Booking: Booking{ID: "b1"}}).apply(s)
	(AppendBooking{Booking: Booking{ID: "b2"}}).apply(s)

	require.Len(t, s.Bookings, 2)
	require.Equal(t, "b1", s.Bookings[0].ID)
	require.Equal(t, "b2", s.Bookings[1].ID)
}
