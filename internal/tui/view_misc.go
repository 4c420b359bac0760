package tui

import (
	"fmt"
)

func (a *App) renderNotifications() string {
	st := a.store.State()
	out := titleStyle.Render(fmt.Sprintf("Notifications (%d unread)", st.UnreadCount())) + "\n"
	if len(st.Notifications) == 0 {
		out += "All caught up.\n"
	}
	for i, n := range st.Notifications {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		dot := "●"
		if n.Read {
			dot = " "
		}
		out += fmt.Sprintf("%s %s %-28s %s  (%s)\n", marker, dot, n.Title, n.Message, n.Timestamp)
	}
	out += "[enter] Mark read  [x] Clear all  [esc] Home"
	return a.withStatus(out)
}

func (a *App) renderProfile() string {
	st := a.store.State()
	out := titleStyle.Render("Profile") + "\n"
	out += fmt.Sprintf("%s\n%s\n%s\n\n", st.Name, st.Email, st.Location)
	out += fmt.Sprintf("Addresses: %d  Cards: %d  Bookings: %d\n\n", len(st.Addresses), len(st.Cards), len(st.Bookings))
	out += "[e] Edit profile  [a] Addresses  [p] Payment methods  [s] Settings  [?] Help  [i] About  [esc] Home"
	return a.withStatus(out)
}

func (a *App) renderSettings() string {
	out := titleStyle.Render("Settings") + "\n"
	out += fmt.Sprintf("Currency symbol: %s\n", a.cfg.UI.CurrencySymbol)
	out += fmt.Sprintf("Date format: %s\n", a.cfg.UI.DateFormat)
	out += fmt.Sprintf("Payment delay: %dms\n", a.cfg.Payment.DelayMS)
	out += fmt.Sprintf("Log file: %s\n", a.cfg.Log.Path)
	out += "\nEdit ~/.config/souk/config.toml to change these.\n[esc] Back"
	return a.withStatus(out)
}

func (a *App) renderHelp() string {
	out := titleStyle.Render("Help") + "\n"
	out += "Arrow keys or j/k move the cursor, enter selects,\nesc goes back, ctrl+c quits from anywhere.\n"
	out += "Number keys on the home screen jump straight to a category.\n[esc] Back"
	return a.withStatus(out)
}

func (a *App) renderAbout() string {
	out := titleStyle.Render("About souk") + "\n"
	out += "A neighbourhood marketplace for services, food,\ngroceries, stays and caregiving.\n[esc] Back"
	return a.withStatus(out)
}

func (a *App) renderAddressList() string {
	st := a.store.State()
	out := titleStyle.Render("Addresses") + "\n"
	if len(st.Addresses) == 0 {
		out += "No saved addresses.\n"
	}
	for i, ad := range st.Addresses {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		def := ""
		if ad.IsDefault {
			def = "  (default)"
		}
		sel := ""
		if ad.ID == st.SelectedAddressID {
			sel = "  ←"
		}
		out += fmt.Sprintf("%s %-10s %s%s%s\n", marker, ad.Label, ad.Display(), def, sel)
	}
	out += "[enter] Use  [d] Make default  [n] New  [x] Remove  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderCardList() string {
	st := a.store.State()
	out := titleStyle.Render("Payment Methods") + "\n"
	if len(st.Cards) == 0 {
		out += "No saved cards.\n"
	}
	for i, c := range st.Cards {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		def := ""
		if c.IsDefault {
			def = "  (default)"
		}
		out += fmt.Sprintf("%s %s ****%s  %s  exp %s%s\n", marker, c.Brand, c.Last4, c.Holder, c.Expiry, def)
	}
	out += "[enter] Make default  [n] New  [x] Remove  [esc] Back"
	return a.withStatus(out)
}
