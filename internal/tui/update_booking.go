package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/soukapp/souk/internal/session"
)

// --- booking forms --------------------------------------------------------

func (a *App) handleBookingFormKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc {
		a.form = nil
		a.navigate(bookingFormBackScreen(cur))
		return a, nil
	}
	if a.form == nil {
		// Deep-linked here without a form; rebuild or bail out.
		a.navigate(bookingFormBackScreen(cur))
		return a, nil
	}
	done, cmd := a.editForm(m)
	if cmd != nil {
		return a, cmd
	}
	if !done {
		return a, nil
	}

	// The rental dates screen chains into the booking form instead of paying.
	if cur == session.ScreenRentalDates {
		checkIn, checkOut := a.form.value("Check-in"), a.form.value("Check-out")
		a.form = newRentalForm(checkIn, checkOut)
		a.navigate(session.ScreenRentalBookingForm)
		return a, nil
	}

	draft, err := a.buildDraft(cur)
	if err != nil {
		return a.missingSelection(err, bookingFormBackScreen(cur))
	}
	a.form = nil
	a.status = "Processing payment..."
	a.navigate(paymentScreen(draft.Category), session.SetDraft{Draft: draft})
	return a, a.beginPayment()
}

func (a *App) buildDraft(cur session.Screen) (session.Draft, error) {
	switch cur {
	case session.ScreenRentalBookingForm:
		return a.buildRentalDraft(a.form)
	case session.ScreenRideBookingForm:
		return a.buildRideDraft(a.form)
	case session.ScreenCompanionBookingForm:
		return a.buildCompanionDraft(a.form)
	default:
		return a.buildServiceDraft(a.form)
	}
}

func bookingFormBackScreen(formScreen session.Screen) session.Screen {
	switch formScreen {
	case session.ScreenCleaningBookingForm:
		return session.ScreenCleaningServiceDetail
	case session.ScreenHandymanBookingForm:
		return session.ScreenHandymanServiceDetail
	case session.ScreenBeautyBookingForm:
		return session.ScreenBeautyServiceDetail
	case session.ScreenRentalDates:
		return session.ScreenPropertyDetail
	case session.ScreenRentalBookingForm:
		return session.ScreenRentalDates
	case session.ScreenRideBookingForm:
		return session.ScreenRideProviderDetail
	case session.ScreenCompanionBookingForm:
		return session.ScreenCompanionDetail
	}
	return session.ScreenHome
}

// --- payment, confirmation, tracking --------------------------------------

// handlePaymentKey: the processing screens accept only abandonment. A timer
// already in flight will land stale once the token is cleared.
func (a *App) handlePaymentKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc {
		a.abandonPayment()
		draft, err := a.store.RequireDraft(a.store.Current())
		if err != nil {
			a.navigate(session.ScreenHome)
			return a, nil
		}
		a.status = "Payment cancelled."
		a.navigate(trackingBackHome(draft.Category), session.ClearDraft{})
		return a, nil
	}
	return a, nil
}

func trackingBackHome(c session.Category) session.Screen {
	switch c {
	case session.CategoryCleaning:
		return session.ScreenCleaningHome
	case session.CategoryHandyman:
		return session.ScreenHandymanHome
	case session.CategoryBeauty:
		return session.ScreenBeautyHome
	case session.CategoryRental:
		return session.ScreenRentalHome
	case session.CategoryCareRide, session.CategoryCareCompanion:
		return session.ScreenCareHome
	}
	return session.ScreenHome
}

func (a *App) handleConfirmationKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "t", "enter":
		switch cur {
		case session.ScreenFoodOrderConfirmation:
			a.navigate(session.ScreenFoodOrderTracking)
		case session.ScreenGroceryOrderConfirmation:
			a.navigate(session.ScreenGroceryOrderTracking)
		case session.ScreenBeautyOrderConfirmation:
			a.navigate(session.ScreenBeautyOrderTracking)
		default:
			draft, err := a.store.RequireDraft(cur)
			if err != nil {
				return a.missingSelection(err, session.ScreenBookingHistory)
			}
			a.navigate(trackingScreen(draft.Category))
		}
		return a, nil
	case "h", "esc":
		a.navigate(session.ScreenHome, session.ClearDraft{})
		return a, nil
	}
	return a, nil
}

func (a *App) handleTrackingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "h":
		a.navigate(session.ScreenHome, session.ClearDraft{})
	case "b":
		a.navigate(session.ScreenBookingHistory, session.ClearDraft{})
	}
	return a, nil
}

// --- rentals --------------------------------------------------------------

func (a *App) handleRentalHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "h":
		a.navigate(session.ScreenHome)
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(a.properties)-1 {
			a.cursor++
		}
		return a, nil
	case "enter":
		if len(a.properties) == 0 {
			return a, nil
		}
		p := a.properties[a.cursor]
		a.navigate(session.ScreenPropertyDetail, session.SelectProperty{Property: &p})
		return a, nil
	}
	return a, nil
}

func (a *App) handlePropertyDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenRentalHome)
		return a, a.loadProperties()
	case "enter", "b":
		if _, err := a.store.RequireProperty(session.ScreenPropertyDetail); err != nil {
			return a.missingSelection(err, session.ScreenRentalHome)
		}
		a.form = newRentalDatesForm()
		a.navigate(session.ScreenRentalDates)
		return a, nil
	}
	return a, nil
}

// --- caregiving -----------------------------------------------------------

func (a *App) handleCareHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "h":
		a.navigate(session.ScreenHome)
		return a, nil
	case "1", "r":
		a.navigate(session.ScreenRideProviders)
		return a, a.loadRides()
	case "2", "c":
		a.navigate(session.ScreenCompanionList)
		return a, a.loadCompanions()
	}
	return a, nil
}

func (a *App) handleCareListKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	listLen := len(a.rides)
	if cur == session.ScreenCompanionList {
		listLen = len(a.companions)
	}
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenCareHome)
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < listLen-1 {
			a.cursor++
		}
		return a, nil
	case "enter":
		if listLen == 0 {
			return a, nil
		}
		if cur == session.ScreenRideProviders {
			rp := a.rides[a.cursor]
			a.navigate(session.ScreenRideProviderDetail, session.SelectRideProvider{Provider: &rp})
		} else {
			c := a.companions[a.cursor]
			a.navigate(session.ScreenCompanionDetail, session.SelectCompanion{Companion: &c})
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleRideProviderDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenRideProviders)
		return a, a.loadRides()
	case "enter", "b":
		if _, err := a.store.RequireRideProvider(session.ScreenRideProviderDetail); err != nil {
			return a.missingSelection(err, session.ScreenRideProviders)
		}
		a.form = newRideForm(a.checkoutAddress().Display())
		a.navigate(session.ScreenRideBookingForm)
		return a, nil
	}
	return a, nil
}

func (a *App) handleCompanionDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenCompanionList)
		return a, a.loadCompanions()
	case "enter", "b":
		if _, err := a.store.RequireCompanion(session.ScreenCompanionDetail); err != nil {
			return a.missingSelection(err, session.ScreenCompanionList)
		}
		a.form = newCompanionForm()
		a.navigate(session.ScreenCompanionBookingForm)
		return a, nil
	}
	return a, nil
}

// --- history, detail, review ----------------------------------------------

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	bookings := a.store.State().Bookings
	switch m.String() {
	case "esc", "h":
		a.navigate(session.ScreenHome)
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(bookings)-1 {
			a.cursor++
		}
		return a, nil
	case "enter":
		if len(bookings) == 0 {
			return a, nil
		}
		a.bookingID = bookings[len(bookings)-1-a.cursor].ID // newest first
		a.navigate(session.ScreenBookingDetail)
		return a, nil
	case "t":
		if len(bookings) == 0 {
			return a, nil
		}
		return a.trackBooking(bookings[len(bookings)-1-a.cursor])
	case "r":
		if len(bookings) == 0 {
			return a, nil
		}
		b := bookings[len(bookings)-1-a.cursor]
		if b.HasReview {
			a.status = "Already reviewed."
			return a, nil
		}
		a.bookingID = b.ID
		a.form = newReviewForm()
		a.navigate(session.ScreenReviewForm)
		return a, nil
	}
	return a, nil
}

// trackBooking re-opens a history entry: the adapter rebuilds the live
// draft (synthesizing whatever the record no longer carries) and the
// tracking screen for its category takes over.
func (a *App) trackBooking(b session.Booking) (tea.Model, tea.Cmd) {
	switch b.Kind {
	case session.KindFood:
		a.bookingID = b.ID
		a.navigate(session.ScreenFoodOrderTracking)
		return a, nil
	case session.KindGrocery:
		a.bookingID = b.ID
		a.navigate(session.ScreenGroceryOrderTracking)
		return a, nil
	}
	draft, rep := session.AdaptBooking(b, a.store.State().DefaultCard())
	if !rep.Clean() {
		a.log.Debug("tracking draft synthesized fields",
			zap.Strings("fields", rep.Fields()))
	}
	a.bookingID = b.ID
	a.navigate(trackingScreen(draft.Category), session.SetDraft{Draft: draft})
	return a, nil
}

func (a *App) handleBookingDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.store.State().BookingByID(a.bookingID)
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenBookingHistory)
		return a, nil
	case "t":
		if b != nil {
			return a.trackBooking(*b)
		}
		return a, nil
	case "r":
		if b == nil || b.HasReview {
			return a, nil
		}
		a.form = newReviewForm()
		a.navigate(session.ScreenReviewForm)
		return a, nil
	}
	return a, nil
}

func (a *App) handleReviewKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc {
		a.form = nil
		a.navigate(session.ScreenBookingHistory)
		return a, nil
	}
	done, cmd := a.editForm(m)
	if cmd != nil {
		return a, cmd
	}
	if !done {
		return a, nil
	}
	rating := a.form.intValue("Rating (1-5)", 5)
	if rating > 5 {
		rating = 5
	}
	comment := a.form.value("Comment")
	a.form = nil
	a.navigate(session.ScreenBookingHistory, session.MarkBookingReviewed{
		ID: a.bookingID, Rating: rating, Comment: comment,
	})
	a.status = "Thanks for your review!"
	return a, nil
}
