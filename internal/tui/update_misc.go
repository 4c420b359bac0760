package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/soukapp/souk/internal/session"
)

func (a *App) handleNotificationsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := a.store.State().Notifications
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
		if a.cursor < len(notes)-1 {
			a.cursor++
		}
		return a, nil
	case "enter":
		if len(notes) == 0 {
			return a, nil
		}
		a.store.Apply(session.MarkNotificationRead{ID: notes[a.cursor].ID})
		return a, nil
	case "x":
		a.store.Apply(session.ClearNotifications{})
		a.cursor = 0
		a.status = "Notifications cleared."
		return a, nil
	}
	return a, nil
}

func (a *App) handleProfileKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := a.store.State()
	switch m.String() {
	case "esc", "h":
		a.navigate(session.ScreenHome)
	case "e":
		a.form = newEditProfileForm(st.Name, st.Email)
		a.navigate(session.ScreenEditProfile)
	case "a":
		a.navigate(session.ScreenAddressList)
	case "p":
		a.navigate(session.ScreenPaymentMethodList)
	case "s":
		a.navigate(session.ScreenSettings)
	case "?":
		a.navigate(session.ScreenHelp)
	case "i":
		a.navigate(session.ScreenAbout)
	}
	return a, nil
}

func (a *App) handleEditProfileKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc {
		a.form = nil
		a.navigate(session.ScreenProfile)
		return a, nil
	}
	done, cmd := a.editForm(m)
	if cmd != nil {
		return a, cmd
	}
	if !done {
		return a, nil
	}
	name, email := a.form.value("Name"), a.form.value("Email")
	a.form = nil
	a.status = "Profile updated."
	a.navigate(session.ScreenProfile, session.SetIdentity{Name: name, Email: email})
	return a, nil
}

// Settings, help and about are read-only pages.
func (a *App) handleStaticKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "h":
		a.navigate(session.ScreenProfile)
	}
	return a, nil
}

// --- addresses ------------------------------------------------------------

func (a *App) handleAddressListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	addrs := a.store.State().Addresses
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenProfile)
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(addrs)-1 {
			a.cursor++
		}
		return a, nil
	case "n":
		a.form = newAddressForm()
		a.navigate(session.ScreenAddressForm)
		return a, nil
	case "d":
		if len(addrs) == 0 {
			return a, nil
		}
		a.store.Apply(session.SetDefaultAddress{ID: addrs[a.cursor].ID})
		a.status = "Default address updated."
		return a, nil
	case "x":
		if len(addrs) == 0 {
			return a, nil
		}
		a.store.Apply(session.RemoveAddress{ID: addrs[a.cursor].ID})
		if a.cursor > 0 {
			a.cursor--
		}
		a.status = "Address removed."
		return a, nil
	case "enter":
		if len(addrs) == 0 {
			return a, nil
		}
		a.store.Apply(session.SelectAddress{ID: addrs[a.cursor].ID})
		a.status = "Address selected."
		return a, nil
	}
	return a, nil
}

func (a *App) handleAddressFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc {
		a.form = nil
		a.navigate(session.ScreenAddressList)
		return a, nil
	}
	done, cmd := a.editForm(m)
	if cmd != nil {
		return a, cmd
	}
	if !done {
		return a, nil
	}
	addr := session.Address{
		ID:     uuid.NewString(),
		Label:  a.form.value("Label"),
		Street: a.form.value("Street"),
		City:   a.form.value("City"),
		State:  a.form.value("State"),
		Zip:    a.form.value("Zip"),
	}
	a.form = nil
	a.status = "Address saved."
	a.navigate(session.ScreenAddressList, session.PutAddress{Address: addr})
	return a, nil
}

// --- payment cards --------------------------------------------------------

func (a *App) handleCardListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := a.store.State().Cards
	switch m.String() {
	case "esc":
		a.navigate(session.ScreenProfile)
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(cards)-1 {
			a.cursor++
		}
		return a, nil
	case "n":
		a.form = newCardForm()
		a.navigate(session.ScreenPaymentMethodForm)
		return a, nil
	case "d", "enter":
		if len(cards) == 0 {
			return a, nil
		}
		a.store.Apply(session.SetDefaultCard{ID: cards[a.cursor].ID})
		a.status = "Default card updated."
		return a, nil
	case "x":
		if len(cards) == 0 {
			return a, nil
		}
		a.store.Apply(session.RemoveCard{ID: cards[a.cursor].ID})
		if a.cursor > 0 {
			a.cursor--
		}
		a.status = "Card removed."
		return a, nil
	}
	return a, nil
}

func (a *App) handleCardFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc {
		a.form = nil
		a.navigate(session.ScreenPaymentMethodList)
		return a, nil
	}
	done, cmd := a.editForm(m)
	if cmd != nil {
		return a, cmd
	}
	if !done {
		return a, nil
	}
	card := session.PaymentCard{
		ID:     uuid.NewString(),
		Brand:  a.form.value("Brand"),
		Last4:  a.form.value("Last 4 digits"),
		Holder: a.form.value("Holder"),
		Expiry: a.form.value("Expiry (MM/YY)"),
		Label:  a.form.value("Label"),
	}
	a.form = nil
	a.status = "Card saved."
	a.navigate(session.ScreenPaymentMethodList, session.PutCard{Card: card})
	return a, nil
}
