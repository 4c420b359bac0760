package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soukapp/souk/internal/session"
)

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch cur := a.store.Current(); cur {
	case session.ScreenSplash, session.ScreenOnboarding,
		session.ScreenSignIn, session.ScreenSignUp:
		return a.handleEntryKey(m)

	case session.ScreenHome:
		return a.handleHomeKey(m)

	case session.ScreenSearch:
		return a.handleSearchKey(m)

	case session.ScreenLocationPicker:
		return a.handleLocationKey(m)

	case session.ScreenCleaningHome, session.ScreenHandymanHome,
		session.ScreenBeautyHome, session.ScreenFoodHome,
		session.ScreenGroceryHome, session.ScreenFavorites:
		return a.handleVendorListKey(m, cur)

	case session.ScreenCleaningProviderDetail, session.ScreenHandymanProviderDetail,
		session.ScreenBeautyProviderDetail:
		return a.handleProviderDetailKey(m, cur)

	case session.ScreenCleaningServiceDetail, session.ScreenHandymanServiceDetail,
		session.ScreenBeautyServiceDetail:
		return a.handleServiceDetailKey(m, cur)

	case session.ScreenRestaurantDetail, session.ScreenGroceryStoreDetail,
		session.ScreenBeautyShop:
		return a.handleStoreDetailKey(m, cur)

	case session.ScreenFoodItemDetail, session.ScreenGroceryItemDetail,
		session.ScreenBeautyProductDetail:
		return a.handleItemDetailKey(m, cur)

	case session.ScreenFoodCart, session.ScreenGroceryCart, session.ScreenBeautyCart:
		return a.handleCartKey(m, cur)

	case session.ScreenFoodCheckout, session.ScreenGroceryCheckout, session.ScreenBeautyCheckout:
		return a.handleCheckoutKey(m, cur)

	case session.ScreenCartReplaceWarning:
		return a.handleWarningKey(m)

	case session.ScreenCleaningBookingForm, session.ScreenHandymanBookingForm,
		session.ScreenBeautyBookingForm, session.ScreenRentalDates,
		session.ScreenRentalBookingForm, session.ScreenRideBookingForm,
		session.ScreenCompanionBookingForm:
		return a.handleBookingFormKey(m, cur)

	case session.ScreenCleaningPayment, session.ScreenHandymanPayment,
		session.ScreenBeautyPayment, session.ScreenRentalPayment,
		session.ScreenRidePayment, session.ScreenCompanionPayment:
		return a.handlePaymentKey(m)

	case session.ScreenCleaningConfirmation, session.ScreenHandymanConfirmation,
		session.ScreenBeautyConfirmation, session.ScreenRentalConfirmation,
		session.ScreenRideConfirmation, session.ScreenCompanionConfirmation,
		session.ScreenFoodOrderConfirmation, session.ScreenGroceryOrderConfirmation,
		session.ScreenBeautyOrderConfirmation:
		return a.handleConfirmationKey(m, cur)

	case session.ScreenCleaningTracking, session.ScreenHandymanTracking,
		session.ScreenBeautyTracking, session.ScreenRentalTracking,
		session.ScreenRideTracking, session.ScreenCompanionTracking,
		session.ScreenFoodOrderTracking, session.ScreenGroceryOrderTracking,
		session.ScreenBeautyOrderTracking:
		return a.handleTrackingKey(m)

	case session.ScreenRentalHome:
		return a.handleRentalHomeKey(m)

	case session.ScreenPropertyDetail:
		return a.handlePropertyDetailKey(m)

	case session.ScreenCareHome:
		return a.handleCareHomeKey(m)

	case session.ScreenRideProviders, session.ScreenCompanionList:
		return a.handleCareListKey(m, cur)

	case session.ScreenRideProviderDetail:
		return a.handleRideProviderDetailKey(m)

	case session.ScreenCompanionDetail:
		return a.handleCompanionDetailKey(m)

	case session.ScreenBookingHistory:
		return a.handleHistoryKey(m)

	case session.ScreenBookingDetail:
		return a.handleBookingDetailKey(m)

	case session.ScreenReviewForm:
		return a.handleReviewKey(m)

	case session.ScreenNotifications:
		return a.handleNotificationsKey(m)

	case session.ScreenProfile:
		return a.handleProfileKey(m)

	case session.ScreenEditProfile:
		return a.handleEditProfileKey(m)

	case session.ScreenSettings, session.ScreenHelp, session.ScreenAbout:
		return a.handleStaticKey(m)

	case session.ScreenAddressList:
		return a.handleAddressListKey(m)

	case session.ScreenAddressForm:
		return a.handleAddressFormKey(m)

	case session.ScreenPaymentMethodList:
		return a.handleCardListKey(m)

	case session.ScreenPaymentMethodForm:
		return a.handleCardFormKey(m)
	}
	return a, nil
}

// --- entry ----------------------------------------------------------------

func (a *App) handleEntryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := a.store.Current()
	switch cur {
	case session.ScreenSplash:
		a.navigate(session.ScreenOnboarding)
		return a, nil
	case session.ScreenOnboarding:
		switch m.String() {
		case "q":
			return a, tea.Quit
		case "s":
			a.form = newSignUpForm()
			a.navigate(session.ScreenSignUp)
		default:
			a.form = newSignInForm(a.cfg.Demo.Email)
			a.navigate(session.ScreenSignIn)
		}
		return a, nil
	}

	// Sign-in / sign-up forms.
	done, cmd := a.editForm(m)
	if cmd != nil {
		return a, cmd
	}
	if !done {
		return a, nil
	}
	name := a.form.value("Name")
	if name == "" {
		name = a.cfg.Demo.Name
	}
	email := a.form.value("Email")
	a.form = nil
	a.navigate(session.ScreenHome, session.SetIdentity{Email: email, Name: name})
	a.status = "Welcome back, " + name
	return a, nil
}

// editForm applies one key to the active form. It returns done=true when the
// form was submitted with all required fields present.
func (a *App) editForm(m tea.KeyMsg) (bool, tea.Cmd) {
	if a.form == nil {
		return false, nil
	}
	switch m.Type {
	case tea.KeyEnter:
		if a.form.complete() {
			return true, nil
		}
		a.status = "Fill the required fields first."
		return false, nil
	case tea.KeyTab, tea.KeyDown:
		a.form.next()
	case tea.KeyShiftTab, tea.KeyUp:
		a.form.prev()
	case tea.KeyBackspace:
		a.form.backspace()
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range m.Runes {
			a.form.typeRune(r)
		}
		if m.Type == tea.KeySpace {
			a.form.typeRune(' ')
		}
	}
	return false, nil
}

// --- home -----------------------------------------------------------------

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "1":
		a.navigate(session.ScreenCleaningHome)
		return a, a.loadVendors("cleaning")
	case "2":
		a.navigate(session.ScreenHandymanHome)
		return a, a.loadVendors("handyman")
	case "3":
		a.navigate(session.ScreenBeautyHome)
		return a, a.loadVendors("beauty")
	case "4":
		a.navigate(session.ScreenFoodHome)
		return a, a.loadVendors("restaurant")
	case "5":
		a.navigate(session.ScreenGroceryHome)
		return a, a.loadVendors("grocery")
	case "6":
		a.navigate(session.ScreenRentalHome)
		return a, a.loadProperties()
	case "7":
		a.navigate(session.ScreenCareHome)
		return a, nil
	case "s":
		a.input = ""
		a.results = nil
		a.searched = false
		a.navigate(session.ScreenSearch, session.SetSearchQuery{Query: ""})
		return a, nil
	case "l":
		a.input = a.store.State().Location
		a.navigate(session.ScreenLocationPicker)
		return a, nil
	case "n":
		a.navigate(session.ScreenNotifications)
		return a, nil
	case "b":
		a.navigate(session.ScreenBookingHistory)
		return a, nil
	case "f":
		a.navigate(session.ScreenFavorites)
		return a, a.loadFavorites()
	case "p":
		a.navigate(session.ScreenProfile)
		return a, nil
	}
	return a, nil
}

// --- search & location ----------------------------------------------------

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.navigate(session.ScreenHome)
		return a, nil
	case tea.KeyEnter:
		if a.searched && len(a.results) > 0 {
			return a.openVendor(a.results[min(a.cursor, len(a.results)-1)], session.ScreenSearch)
		}
		a.searched = true
		a.cursor = 0
		a.store.Apply(session.SetSearchQuery{Query: a.input})
		return a, a.searchVendors(a.input)
	case tea.KeyUp:
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case tea.KeyDown:
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil
	case tea.KeyBackspace:
		if a.input != "" {
			a.input = a.input[:len(a.input)-1]
		}
		a.searched = false
		return a, nil
	case tea.KeyRunes, tea.KeySpace:
		if m.Type == tea.KeySpace {
			a.input += " "
		} else {
			a.input += string(m.Runes)
		}
		a.searched = false
		return a, nil
	}
	return a, nil
}

func (a *App) handleLocationKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.navigate(session.ScreenHome)
	case tea.KeyEnter:
		if a.input != "" {
			a.navigate(session.ScreenHome, session.SetLocation{Location: a.input})
			a.status = "Location updated."
		}
	case tea.KeyBackspace:
		if a.input != "" {
			a.input = a.input[:len(a.input)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		if m.Type == tea.KeySpace {
			a.input += " "
		} else {
			a.input += string(m.Runes)
		}
	}
	return a, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
