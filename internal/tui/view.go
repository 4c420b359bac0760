package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/soukapp/souk/internal/session"
)

// styles
var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func (a *App) View() string {
	switch cur := a.store.Current(); cur {
	case session.ScreenOnboarding:
		return a.renderOnboarding()
	case session.ScreenSignIn, session.ScreenSignUp,
		session.ScreenEditProfile, session.ScreenAddressForm,
		session.ScreenPaymentMethodForm, session.ScreenReviewForm,
		session.ScreenCleaningBookingForm, session.ScreenHandymanBookingForm,
		session.ScreenBeautyBookingForm, session.ScreenRentalDates,
		session.ScreenRentalBookingForm, session.ScreenRideBookingForm,
		session.ScreenCompanionBookingForm:
		return a.renderForm()
	case session.ScreenHome:
		return a.renderHome()
	case session.ScreenSearch:
		return a.renderSearch()
	case session.ScreenLocationPicker:
		return a.renderLocationPicker()

	case session.ScreenCleaningHome, session.ScreenHandymanHome,
		session.ScreenBeautyHome, session.ScreenFoodHome,
		session.ScreenGroceryHome, session.ScreenFavorites:
		return a.renderVendorList(cur)
	case session.ScreenCleaningProviderDetail, session.ScreenHandymanProviderDetail,
		session.ScreenBeautyProviderDetail:
		return a.renderProviderDetail(cur)
	case session.ScreenCleaningServiceDetail, session.ScreenHandymanServiceDetail,
		session.ScreenBeautyServiceDetail:
		return a.renderServiceDetail()
	case session.ScreenRestaurantDetail, session.ScreenGroceryStoreDetail,
		session.ScreenBeautyShop:
		return a.renderStore(cur)
	case session.ScreenFoodItemDetail, session.ScreenGroceryItemDetail,
		session.ScreenBeautyProductDetail:
		return a.renderItemDetail()
	case session.ScreenFoodCart, session.ScreenGroceryCart, session.ScreenBeautyCart:
		return a.renderCart(cur)
	case session.ScreenFoodCheckout, session.ScreenGroceryCheckout, session.ScreenBeautyCheckout:
		return a.renderCheckout(cur)
	case session.ScreenCartReplaceWarning:
		return a.renderCartWarning()

	case session.ScreenCleaningPayment, session.ScreenHandymanPayment,
		session.ScreenBeautyPayment, session.ScreenRentalPayment,
		session.ScreenRidePayment, session.ScreenCompanionPayment:
		return a.renderPayment()
	case session.ScreenCleaningConfirmation, session.ScreenHandymanConfirmation,
		session.ScreenBeautyConfirmation, session.ScreenRentalConfirmation,
		session.ScreenRideConfirmation, session.ScreenCompanionConfirmation,
		session.ScreenFoodOrderConfirmation, session.ScreenGroceryOrderConfirmation,
		session.ScreenBeautyOrderConfirmation:
		return a.renderConfirmation(cur)
	case session.ScreenCleaningTracking, session.ScreenHandymanTracking,
		session.ScreenBeautyTracking, session.ScreenRentalTracking,
		session.ScreenRideTracking, session.ScreenCompanionTracking,
		session.ScreenFoodOrderTracking, session.ScreenGroceryOrderTracking,
		session.ScreenBeautyOrderTracking:
		return a.renderTracking(cur)

	case session.ScreenRentalHome:
		return a.renderRentalHome()
	case session.ScreenPropertyDetail:
		return a.renderPropertyDetail()
	case session.ScreenCareHome:
		return a.renderCareHome()
	case session.ScreenRideProviders, session.ScreenCompanionList:
		return a.renderCareList(cur)
	case session.ScreenRideProviderDetail:
		return a.renderRideProviderDetail()
	case session.ScreenCompanionDetail:
		return a.renderCompanionDetail()

	case session.ScreenBookingHistory:
		return a.renderHistory()
	case session.ScreenBookingDetail:
		return a.renderBookingDetail()
	case session.ScreenNotifications:
		return a.renderNotifications()
	case session.ScreenProfile:
		return a.renderProfile()
	case session.ScreenSettings:
		return a.renderSettings()
	case session.ScreenHelp:
		return a.renderHelp()
	case session.ScreenAbout:
		return a.renderAbout()
	case session.ScreenAddressList:
		return a.renderAddressList()
	case session.ScreenPaymentMethodList:
		return a.renderCardList()
	}
	return a.renderSplash()
}

func (a *App) money(d decimal.Decimal) string {
	return a.cfg.UI.CurrencySymbol + d.StringFixed(2)
}

// withStatus appends the transient status line when set.
func (a *App) withStatus(out string) string {
	if a.status != "" {
		return out + "\n" + a.status
	}
	return out
}

func (a *App) renderSplash() string {
	return titleStyle.Render("souk") + "\nEverything your neighbourhood offers, one app.\nLoading..."
}

func (a *App) renderOnboarding() string {
	title := titleStyle.Render("Welcome to souk")
	body := "Book home services, order food and groceries,\nrent stays and arrange caregiving - all in one place.\n\n[enter] Sign in  [s] Create account  [q] Quit"
	return a.withStatus(fmt.Sprintf("%s\n%s", title, body))
}

// renderForm renders whichever form is active; every text-entry screen shares
// this shape.
func (a *App) renderForm() string {
	if a.form == nil {
		return a.renderSplash()
	}
	out := titleStyle.Render(a.form.title) + "\n"
	for i, fd := range a.form.fields {
		marker := " "
		if i == a.form.focus {
			marker = "▶"
		}
		req := ""
		if fd.required {
			req = "*"
		}
		out += fmt.Sprintf("%s %s%s: %s\n", marker, fd.label, req, fd.value)
	}
	out += "[enter] Submit  [tab] Next field  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderHome() string {
	st := a.store.State()
	title := titleStyle.Render("souk")
	hello := "Hi " + st.Name
	if st.Name == "" {
		hello = "Hi there"
	}
	out := fmt.Sprintf("%s\n%s  ·  %s\n\n", title, hello, st.Location)
	out += "[1] Cleaning\n[2] Handyman\n[3] Beauty\n[4] Food delivery\n[5] Groceries\n[6] Rentals\n[7] Caregiving\n\n"
	out += fmt.Sprintf("[s] Search  [l] Location  [n] Notifications (%d unread)  [b] Bookings  [f] Favorites  [p] Profile  [q] Quit", st.UnreadCount())
	return a.withStatus(out)
}

func (a *App) renderSearch() string {
	out := titleStyle.Render("Search") + "\n"
	out += fmt.Sprintf("Query: %s\n", a.input)
	if a.searched {
		if len(a.results) == 0 {
			out += "No vendors match.\n"
		}
		for i, v := range a.results {
			marker := " "
			if i == a.cursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %-28s %-10s %.1f★  %s\n", marker, v.Name, v.Category, v.Rating, v.Area)
		}
	} else {
		out += "Type a vendor name and press Enter.\n"
	}
	out += "[enter] Search/Open  [esc] Home"
	return a.withStatus(out)
}

func (a *App) renderLocationPicker() string {
	out := titleStyle.Render("Delivery location") + "\n"
	out += fmt.Sprintf("Current: %s\n", a.store.State().Location)
	out += fmt.Sprintf("New: %s\n", a.input)
	out += "[enter] Save  [esc] Cancel"
	return a.withStatus(out)
}

func ratingStars(r float64) string {
	return fmt.Sprintf("%.1f★", r)
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
