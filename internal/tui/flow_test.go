package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soukapp/souk/internal/catalog"
	"github.com/soukapp/souk/internal/config"
	"github.com/soukapp/souk/internal/database"
	"github.com/soukapp/souk/internal/service"
	"github.com/soukapp/souk/internal/session"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, database.SeedDemo(ctx, db))

	cfg := config.Config{
		Payment: config.PaymentConfig{DelayMS: 1},
		UI:      config.UIConfig{CurrencySymbol: "$", DateFormat: "02 Jan 2006"},
		Demo:    config.DemoConfig{Email: "amina@example.com", Name: "Amina W.", Location: "Kilimani, Nairobi"},
	}

	store := session.NewStore(session.NewSeededState(cfg.Demo.Email, cfg.Demo.Name, cfg.Demo.Location))
	return New(ctx, cfg, store, Services{
		Catalog:  catalog.NewRepo(db),
		Bookings: &service.BookingService{Log: zap.NewNop()},
		Payments: &service.PaymentSimulator{Delay: time.Millisecond, Log: zap.NewNop()},
	}, zap.NewNop())
}

func flowMsg(t *testing.T, a *App, msg tea.Msg) *App {
	t.Helper()
	next, cmd := a.Update(msg)
	got, ok := next.(*App)
	require.True(t, ok, "Update returned %T, want *App", next)
	return flowDrain(t, got, cmd)
}

func flowDrain(t *testing.T, a *App, cmd tea.Cmd) *App {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 32, "command chain exceeded max depth")
		msg := cmd()
		if msg == nil {
			return a
		}
		next, nextCmd := a.Update(msg)
		got, ok := next.(*App)
		require.True(t, ok, "command update returned %T, want *App", next)
		a = got
		cmd = nextCmd
	}
	return a
}

func flowPress(t *testing.T, a *App, key string) *App {
	t.Helper()
	var m tea.KeyMsg
	switch key {
	case "enter":
		m = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		m = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		m = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		m = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		m = tea.KeyMsg{Type: tea.KeyDown}
	default:
		m = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return flowMsg(t, a, m)
}

func flowType(t *testing.T, a *App, input string) *App {
	t.Helper()
	for _, r := range input {
		a = flowPress(t, a, string(r))
	}
	return a
}

func TestSignInFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	require.Equal(t, session.ScreenSplash, a.Store().Current())

	a = flowMsg(t, a, splashDoneMsg{})
	require.Equal(t, session.ScreenOnboarding, a.Store().Current())

	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenSignIn, a.Store().Current())
	require.NotNil(t, a.form)
	require.Equal(t, "amina@example.com", a.form.value("Email"))

	// Email is prefilled; only the password is missing.
	a = flowPress(t, a, "tab")
	a = flowType(t, a, "secret")
	a = flowPress(t, a, "enter")

	require.Equal(t, session.ScreenHome, a.Store().Current())
	require.Equal(t, "amina@example.com", a.Store().State().Email)
	require.Nil(t, a.form)
}

func TestSignInRejectsIncompleteForm(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a = flowMsg(t, a, splashDoneMsg{})
	a = flowPress(t, a, "enter")

	// Password still empty: enter must not submit.
	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenSignIn, a.Store().Current())
	require.NotEmpty(t, a.status)
}

func TestFoodOrderCrossVendorFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)

	a = flowPress(t, a, "4")
	require.Equal(t, session.ScreenFoodHome, a.Store().Current())
	require.Len(t, a.vendors, 2)
	require.Equal(t, "Mama Oliech", a.vendors[0].Name) // highest rating first

	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenRestaurantDetail, a.Store().Current())
	require.NotEmpty(t, a.items)

	a = flowPress(t, a, "a")
	st := a.Store().State()
	require.Len(t, st.Cart(session.CartFood).Lines, 1)
	require.Equal(t, "Mama Oliech", st.Cart(session.CartFood).VendorName)

	// Back out and open the other restaurant.
	a = flowPress(t, a, "esc")
	require.Equal(t, session.ScreenFoodHome, a.Store().Current())
	a = flowPress(t, a, "down")
	a = flowPress(t, a, "enter")
	require.Equal(t, "Burger Yard", a.Store().State().SelectedVendor.Name)

	// Cross-vendor add must stage, not mutate.
	a = flowPress(t, a, "a")
	require.Equal(t, session.ScreenCartReplaceWarning, a.Store().Current())
	st = a.Store().State()
	require.Equal(t, "Mama Oliech", st.Cart(session.CartFood).VendorName)
	require.NotNil(t, st.PendingAction)

	// Confirm: cart replaced, back on the menu.
	a = flowPress(t, a, "y")
	require.Equal(t, session.ScreenRestaurantDetail, a.Store().Current())
	st = a.Store().State()
	require.Equal(t, "Burger Yard", st.Cart(session.CartFood).VendorName)
	require.Len(t, st.Cart(session.CartFood).Lines, 1)
	require.Nil(t, st.PendingAction)
}

func TestCrossVendorCancelKeepsCart(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)
	a = flowPress(t, a, "4")
	a = flowPress(t, a, "enter")
	a = flowPress(t, a, "a")
	a = flowPress(t, a, "esc")
	a = flowPress(t, a, "down")
	a = flowPress(t, a, "enter")
	a = flowPress(t, a, "a")
	require.Equal(t, session.ScreenCartReplaceWarning, a.Store().Current())

	a = flowPress(t, a, "n")
	st := a.Store().State()
	require.Equal(t, "Mama Oliech", st.Cart(session.CartFood).VendorName)
	require.Nil(t, st.PendingAction)
}

func TestCheckoutPaymentFinalizesExactlyOneOrder(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)
	a = flowPress(t, a, "4")
	a = flowPress(t, a, "enter")
	a = flowPress(t, a, "a")
	before := len(a.Store().State().Bookings)
	notesBefore := len(a.Store().State().Notifications)

	a = flowPress(t, a, "c")
	require.Equal(t, session.ScreenFoodCart, a.Store().Current())
	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenFoodCheckout, a.Store().Current())

	// The drain runs the payment timer to completion.
	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenFoodOrderConfirmation, a.Store().Current())

	st := a.Store().State()
	require.Len(t, st.Bookings, before+1)
	b := st.Bookings[len(st.Bookings)-1]
	require.Equal(t, session.KindFood, b.Kind)
	require.Equal(t, session.StatusAccepted, b.Status)
	require.False(t, b.HasReview)
	require.Len(t, b.Items, 1)
	require.True(t, st.Cart(session.CartFood).Empty())
	require.Len(t, st.Notifications, notesBefore+1)
	require.Empty(t, a.paymentToken)
}

func TestAbandonedPaymentCompletionIsDropped(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)
	a = flowPress(t, a, "4")
	a = flowPress(t, a, "enter")
	a = flowPress(t, a, "a")
	a = flowPress(t, a, "c")
	a = flowPress(t, a, "enter")
	before := len(a.Store().State().Bookings)

	// Start the payment but hold its completion instead of draining it.
	next, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = next.(*App)
	require.NotNil(t, cmd)
	require.NotEmpty(t, a.paymentToken)

	// Leaving checkout abandons the flow.
	a = flowPress(t, a, "esc")
	require.Equal(t, session.ScreenFoodCart, a.Store().Current())
	require.Empty(t, a.paymentToken)

	// The timer lands late; its token no longer matches anything.
	a = flowMsg(t, a, cmd())
	require.Len(t, a.Store().State().Bookings, before, "stale completion must not finalize")
	require.Equal(t, session.ScreenFoodCart, a.Store().Current())
	require.False(t, a.Store().State().Cart(session.CartFood).Empty())
}

func TestCleaningBookingFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)

	a = flowPress(t, a, "1")
	require.Equal(t, session.ScreenCleaningHome, a.Store().Current())
	require.Equal(t, "Sparkle Homes", a.vendors[0].Name)

	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenCleaningProviderDetail, a.Store().Current())
	require.Len(t, a.services, 3)
	require.Equal(t, "Standard Cleaning", a.services[0].Name) // cheapest first

	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenCleaningServiceDetail, a.Store().Current())

	a = flowPress(t, a, "b")
	require.Equal(t, session.ScreenCleaningBookingForm, a.Store().Current())
	require.NotNil(t, a.form)

	before := len(a.Store().State().Bookings)
	a = flowType(t, a, "2026-09-05")
	a = flowPress(t, a, "tab")
	a = flowType(t, a, "09:00")

	// Submitting pays and finalizes in one drained chain.
	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenCleaningConfirmation, a.Store().Current())

	st := a.Store().State()
	require.Len(t, st.Bookings, before+1)
	b := st.Bookings[len(st.Bookings)-1]
	require.Equal(t, session.KindCleaning, b.Kind)
	require.Equal(t, session.StatusAccepted, b.Status)
	require.False(t, b.HasReview)
	require.Equal(t, "45", b.Total.String())
	require.Equal(t, "Sparkle Homes", b.Vendor.Name)
	require.Equal(t, "2026-09-05", b.Schedule.Date)

	// Track, then go home: the draft is cleared on exit.
	a = flowPress(t, a, "t")
	require.Equal(t, session.ScreenCleaningTracking, a.Store().Current())
	a = flowPress(t, a, "h")
	require.Equal(t, session.ScreenHome, a.Store().Current())
	require.Nil(t, a.Store().State().Draft)
	require.Equal(t, session.CategoryNone, a.Store().State().CurrentBookingType)
}

func TestTrackingFromHistoryAdaptsRecord(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenBookingHistory)

	// Newest first: seeded rental sits on top.
	a = flowPress(t, a, "t")
	require.Equal(t, session.ScreenRentalTracking, a.Store().Current())
	d := a.Store().State().Draft
	require.NotNil(t, d)
	require.Equal(t, session.CategoryRental, d.Category)
	require.Equal(t, "Karen Garden Cottage", d.Vendor.Name)

	// Food orders track through the order screen, no draft needed.
	a = flowPress(t, a, "h")
	a.Store().Navigate(session.ScreenBookingHistory)
	a = flowPress(t, a, "down")
	a = flowPress(t, a, "t")
	require.Equal(t, session.ScreenFoodOrderTracking, a.Store().Current())
}

func TestReviewFromHistory(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenBookingHistory)

	// Newest-first order: rental, food, handyman, cleaning. The handyman
	// entry has no review yet.
	a = flowPress(t, a, "down")
	a = flowPress(t, a, "down")
	a = flowPress(t, a, "r")
	require.Equal(t, session.ScreenReviewForm, a.Store().Current())

	a = flowPress(t, a, "enter") // rating prefilled with 5
	require.Equal(t, session.ScreenBookingHistory, a.Store().Current())

	b := a.Store().State().BookingByID(a.bookingID)
	require.NotNil(t, b)
	require.Equal(t, session.KindHandyman, b.Kind)
	require.True(t, b.HasReview)
	require.Equal(t, 5, b.Rating)
}

func TestNotificationsMarkReadAndClear(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)
	require.Equal(t, 2, a.Store().State().UnreadCount())

	a = flowPress(t, a, "n")
	require.Equal(t, session.ScreenNotifications, a.Store().Current())

	a = flowPress(t, a, "enter")
	require.Equal(t, 1, a.Store().State().UnreadCount())
	a = flowPress(t, a, "enter") // idempotent on the same entry
	require.Equal(t, 1, a.Store().State().UnreadCount())

	a = flowPress(t, a, "x")
	require.Empty(t, a.Store().State().Notifications)
	require.Equal(t, 0, a.Store().State().UnreadCount())
}

func TestAddressBookKeepsSingleDefault(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)
	a = flowPress(t, a, "p")
	a = flowPress(t, a, "a")
	require.Equal(t, session.ScreenAddressList, a.Store().Current())

	// Make the second address default.
	a = flowPress(t, a, "down")
	a = flowPress(t, a, "d")
	addrs := a.Store().State().Addresses
	require.False(t, addrs[0].IsDefault)
	require.True(t, addrs[1].IsDefault)

	// New address via the form.
	a = flowPress(t, a, "n")
	require.Equal(t, session.ScreenAddressForm, a.Store().Current())
	a = flowPress(t, a, "tab") // Label is prefilled
	a = flowType(t, a, "8 Baobab Lane")
	a = flowPress(t, a, "tab")
	a = flowType(t, a, "Mombasa")
	a = flowPress(t, a, "enter")

	require.Equal(t, session.ScreenAddressList, a.Store().Current())
	addrs = a.Store().State().Addresses
	require.Len(t, addrs, 3)
	require.Equal(t, 1, countDefaults(addrs))
}

func countDefaults(addrs []session.Address) int {
	n := 0
	for _, ad := range addrs {
		if ad.IsDefault {
			n++
		}
	}
	return n
}

func TestSearchFindsVendorsFuzzily(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Store().Navigate(session.ScreenHome)
	a = flowPress(t, a, "s")
	require.Equal(t, session.ScreenSearch, a.Store().Current())

	// One character off, levenshtein catches it.
	a = flowType(t, a, "sparkel")
	a = flowPress(t, a, "enter")
	require.True(t, a.searched)
	require.NotEmpty(t, a.results)
	require.Equal(t, "Sparkle Homes", a.results[0].Name)

	// Enter again opens the selected result.
	a = flowPress(t, a, "enter")
	require.Equal(t, session.ScreenCleaningProviderDetail, a.Store().Current())
}

func TestViewRendersEveryReachableScreen(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	screens := []session.Screen{
		session.ScreenOnboarding, session.ScreenHome, session.ScreenSearch,
		session.ScreenCleaningHome, session.ScreenFoodCart, session.ScreenFoodCheckout,
		session.ScreenCartReplaceWarning, session.ScreenBookingHistory,
		session.ScreenNotifications, session.ScreenProfile, session.ScreenSettings,
		session.ScreenAddressList, session.ScreenPaymentMethodList,
		session.ScreenCareHome, session.ScreenRentalHome, session.ScreenHelp,
		session.ScreenAbout, session.ScreenCleaningTracking,
	}
	for _, s := range screens {
		a.Store().Navigate(s)
		require.NotEmpty(t, a.View(), "screen %s rendered empty", s)
	}

	// Unhandled view states fall back to the splash render.
	a.Store().Navigate(session.ScreenSplash)
	require.Contains(t, a.View(), "souk")
}
