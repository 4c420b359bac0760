package tui

import (
	"fmt"

	"github.com/soukapp/souk/internal/session"
)

func (a *App) renderPayment() string {
	st := a.store.State()
	out := titleStyle.Render("Payment") + "\n"
	if d := st.Draft; d != nil {
		out += fmt.Sprintf("%s - %s\n", d.Vendor.Name, d.Service.Name)
		out += fmt.Sprintf("Total: %s\n", a.money(d.Total))
		out += fmt.Sprintf("Card: %s ****%s\n", d.Payment.Brand, d.Payment.Last4)
	}
	out += "\nProcessing payment...\n[esc] Cancel"
	return a.withStatus(out)
}

func (a *App) renderConfirmation(cur session.Screen) string {
	st := a.store.State()
	out := titleStyle.Render("Booking confirmed!") + "\n"
	switch cur {
	case session.ScreenFoodOrderConfirmation, session.ScreenGroceryOrderConfirmation,
		session.ScreenBeautyOrderConfirmation:
		out = titleStyle.Render("Order placed!") + "\n"
		if len(st.Bookings) > 0 {
			b := st.Bookings[len(st.Bookings)-1]
			out += fmt.Sprintf("%s  ·  %d items  ·  %s\n", b.Vendor.Name, len(b.Items), a.money(b.Total))
		}
	default:
		if d := st.Draft; d != nil {
			out += fmt.Sprintf("%s - %s\n", d.Vendor.Name, d.Service.Name)
			out += fmt.Sprintf("%s %s\n", d.Schedule.Date, d.Schedule.Time)
			out += fmt.Sprintf("Paid %s with %s ****%s\n", a.money(d.Total), d.Payment.Brand, d.Payment.Last4)
		}
	}
	out += "\n[t] Track  [h] Home"
	return a.withStatus(out)
}

var trackingSteps = []string{"Accepted", "Provider on the way", "In progress", "Completed"}

var orderTrackingSteps = []string{"Order placed", "Being prepared", "Out for delivery", "Delivered"}

func (a *App) renderTracking(cur session.Screen) string {
	st := a.store.State()
	steps := trackingSteps
	title := "Tracking"
	switch cur {
	case session.ScreenFoodOrderTracking, session.ScreenGroceryOrderTracking,
		session.ScreenBeautyOrderTracking:
		steps = orderTrackingSteps
		title = "Order tracking"
	}
	out := titleStyle.Render(title) + "\n"
	if d := st.Draft; d != nil {
		out += fmt.Sprintf("%s - %s\n", d.Vendor.Name, d.Service.Name)
	} else if b := st.BookingByID(a.bookingID); b != nil {
		out += fmt.Sprintf("%s - %s\n", b.Vendor.Name, b.Service.Name)
	}
	for i, s := range steps {
		mark := "○"
		if i == 0 {
			mark = "●"
		}
		out += fmt.Sprintf("%s %s\n", mark, s)
	}
	out += "[b] Bookings  [h] Home"
	return a.withStatus(out)
}

func (a *App) renderRentalHome() string {
	out := titleStyle.Render("Stays") + "\n"
	if len(a.properties) == 0 {
		out += "  (loading)\n"
	}
	for i, p := range a.properties {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-30s %s, %s  %s/night  %s\n", marker, p.Title, p.Area, p.City, a.money(p.Nightly), ratingStars(p.Rating))
	}
	out += "[enter] View  [esc] Home"
	return a.withStatus(out)
}

func (a *App) renderPropertyDetail() string {
	p := a.store.State().SelectedProperty
	if p == nil {
		return a.renderRentalHome()
	}
	out := titleStyle.Render(p.Title) + "\n"
	out += fmt.Sprintf("%s, %s  ·  %s\n", p.Area, p.City, ratingStars(p.Rating))
	out += fmt.Sprintf("%d beds  ·  %d baths  ·  sleeps %d\n", p.Beds, p.Baths, p.Guests)
	out += fmt.Sprintf("%s per night\n", a.money(p.Nightly))
	out += "[b] Choose dates  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderCareHome() string {
	out := titleStyle.Render("Caregiving") + "\n"
	out += "Support for elderly family members.\n\n"
	out += "[1] Rides to appointments\n[2] Companionship visits\n\n[esc] Home"
	return a.withStatus(out)
}

func (a *App) renderCareList(cur session.Screen) string {
	if cur == session.ScreenRideProviders {
		out := titleStyle.Render("Ride Providers") + "\n"
		if len(a.rides) == 0 {
			out += "  (loading)\n"
		}
		for i, r := range a.rides {
			marker := " "
			if i == a.cursor {
				marker = "▶"
			}
			wc := ""
			if r.Wheelchair {
				wc = "  ♿"
			}
			out += fmt.Sprintf("%s %-24s %-12s %s  base %s%s\n", marker, r.Name, r.VehicleType, ratingStars(r.Rating), a.money(r.BaseFare), wc)
		}
		out += "[enter] View  [esc] Back"
		return a.withStatus(out)
	}
	out := titleStyle.Render("Companions") + "\n"
	if len(a.companions) == 0 {
		out += "  (loading)\n"
	}
	for i, c := range a.companions {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-24s %s  %s/hr  %s\n", marker, c.Name, ratingStars(c.Rating), a.money(c.HourlyRate), c.Specialties)
	}
	out += "[enter] View  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderRideProviderDetail() string {
	r := a.store.State().SelectedRideProvider
	if r == nil {
		return a.renderCareHome()
	}
	out := titleStyle.Render(r.Name) + "\n"
	out += fmt.Sprintf("%s  ·  %s  ·  ETA %s\n", r.VehicleType, ratingStars(r.Rating), r.ETA)
	out += fmt.Sprintf("Base fare %s + %s/km\n", a.money(r.BaseFare), a.money(r.PerKM))
	if r.Wheelchair {
		out += "Wheelchair accessible\n"
	}
	out += "[b] Book ride  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderCompanionDetail() string {
	c := a.store.State().SelectedCompanion
	if c == nil {
		return a.renderCareHome()
	}
	out := titleStyle.Render(c.Name) + "\n"
	out += fmt.Sprintf("%s  ·  %s/hr\n", ratingStars(c.Rating), a.money(c.HourlyRate))
	out += c.Bio + "\n"
	out += "Specialties: " + c.Specialties + "\n"
	out += "Languages: " + c.Languages + "\n"
	out += "[b] Book visit  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderHistory() string {
	bookings := a.store.State().Bookings
	out := titleStyle.Render("My Bookings") + "\n"
	if len(bookings) == 0 {
		out += "No bookings yet.\n"
	}
	// Newest first.
	for i := range bookings {
		b := bookings[len(bookings)-1-i]
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		review := ""
		if b.HasReview {
			review = "  reviewed"
		}
		out += fmt.Sprintf("%s %-10s %-26s %-12s %8s%s\n", marker, b.Kind, b.Vendor.Name, b.Status, a.money(b.Total), review)
	}
	out += "[enter] Details  [t] Track  [r] Review  [esc] Home"
	return a.withStatus(out)
}

func (a *App) renderBookingDetail() string {
	b := a.store.State().BookingByID(a.bookingID)
	if b == nil {
		return a.renderHistory()
	}
	out := titleStyle.Render("Booking "+shortID(b.ID)) + "\n"
	out += fmt.Sprintf("%s  ·  %s\n", b.Kind, b.Status)
	out += fmt.Sprintf("Vendor: %s (%s)\n", b.Vendor.Name, ratingStars(b.Vendor.Rating))
	out += fmt.Sprintf("Service: %s\n", b.Service.Name)
	out += fmt.Sprintf("When: %s %s\n", b.Schedule.Date, b.Schedule.Time)
	out += fmt.Sprintf("Where: %s\n", b.Address.Display())
	for _, l := range b.Items {
		out += fmt.Sprintf("  %dx %-28s %8s\n", l.Qty, l.Name, a.money(l.UnitPrice.Mul(decimalFromInt(l.Qty))))
	}
	out += fmt.Sprintf("Total: %s\n", a.money(b.Total))
	if b.HasReview {
		out += fmt.Sprintf("Your review: %d/5 %s\n", b.Rating, b.Review)
	}
	out += "[t] Track  [r] Review  [esc] Back"
	return a.withStatus(out)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
