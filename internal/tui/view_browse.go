package tui

import (
	"fmt"

	"github.com/soukapp/souk/internal/session"
)

func vendorListTitle(s session.Screen) string {
	switch s {
	case session.ScreenCleaningHome:
		return "Home Cleaning"
	case session.ScreenHandymanHome:
		return "Handyman Services"
	case session.ScreenBeautyHome:
		return "Beauty & Wellness"
	case session.ScreenFoodHome:
		return "Food Delivery"
	case session.ScreenGroceryHome:
		return "Groceries"
	case session.ScreenFavorites:
		return "Favorites"
	}
	return "Vendors"
}

func (a *App) renderVendorList(cur session.Screen) string {
	out := titleStyle.Render(vendorListTitle(cur)) + "\n"
	if len(a.vendors) == 0 {
		out += "Nothing here yet.\n"
	}
	for i, v := range a.vendors {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		fav := ""
		if a.store.State().Favorites[v.ID] {
			fav = " ♥"
		}
		out += fmt.Sprintf("%s %-28s %s (%d)  %s  %s%s\n", marker, v.Name, ratingStars(v.Rating), v.ReviewCount, v.Area, v.ETA, fav)
	}
	out += "[enter] Open"
	if _, ok := cartKindForScreen(cur); ok {
		out += "  [c] Cart"
	}
	out += "  [esc] Home"
	return a.withStatus(out)
}

func (a *App) renderProviderDetail(cur session.Screen) string {
	v := a.store.State().SelectedVendor
	if v == nil {
		return a.renderVendorList(providerListScreen(cur))
	}
	out := titleStyle.Render(v.Name) + "\n"
	out += fmt.Sprintf("%s (%d reviews)  ·  %s\n%s\n", ratingStars(v.Rating), v.ReviewCount, v.Area, v.Tagline)
	if v.Verified {
		out += "✓ Verified provider\n"
	}
	out += "\nServices:\n"
	if len(a.services) == 0 {
		out += "  (loading)\n"
	}
	for i, s := range a.services {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-32s %8s  %d min\n", marker, s.Name, a.money(s.Price), s.DurationMin)
	}
	out += "[enter] Service details  [f] Favorite"
	if cur == session.ScreenBeautyProviderDetail {
		out += "  [s] Shop products"
	}
	out += "  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderServiceDetail() string {
	st := a.store.State()
	s := st.SelectedService
	if s == nil {
		return a.renderSplash()
	}
	out := titleStyle.Render(s.Name) + "\n"
	if st.SelectedVendor != nil {
		out += "by " + st.SelectedVendor.Name + "\n"
	}
	out += fmt.Sprintf("%s  ·  %d min\n%s\n", a.money(s.Price), s.DurationMin, s.Description)
	out += "[b] Book now  [esc] Back"
	return a.withStatus(out)
}

func storeTitle(s session.Screen) string {
	switch s {
	case session.ScreenRestaurantDetail:
		return "Menu"
	case session.ScreenGroceryStoreDetail:
		return "Aisles"
	case session.ScreenBeautyShop:
		return "Products"
	}
	return "Items"
}

func (a *App) renderStore(cur session.Screen) string {
	st := a.store.State()
	name := storeTitle(cur)
	if st.SelectedVendor != nil {
		name = st.SelectedVendor.Name + " - " + name
	}
	kind, _ := cartKindForScreen(cur)
	cart := st.Cart(kind)
	out := titleStyle.Render(name) + "\n"
	if len(a.items) == 0 {
		out += "  (loading)\n"
	}
	section := ""
	for i, it := range a.items {
		if it.Section != "" && it.Section != section {
			section = it.Section
			out += section + ":\n"
		}
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		stock := ""
		if !it.InStock {
			stock = "  (out of stock)"
		}
		out += fmt.Sprintf("%s %-32s %8s%s\n", marker, it.Name, a.money(it.Price), stock)
	}
	out += fmt.Sprintf("Cart: %d items, %s\n", len(cart.Lines), a.money(cart.Subtotal()))
	out += "[a] Add to cart  [enter] Item details  [c] Cart  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderItemDetail() string {
	it := a.store.State().SelectedItem
	if it == nil {
		return a.renderSplash()
	}
	out := titleStyle.Render(it.Name) + "\n"
	if it.Section != "" {
		out += it.Section + "\n"
	}
	out += a.money(it.Price) + "\n"
	if !it.InStock {
		out += "Currently out of stock.\n"
	}
	out += "[a] Add to cart  [esc] Back"
	return a.withStatus(out)
}

func cartTitle(kind session.CartKind) string {
	switch kind {
	case session.CartFood:
		return "Food Cart"
	case session.CartGrocery:
		return "Grocery Cart"
	case session.CartBeautyProducts:
		return "Beauty Cart"
	}
	return "Cart"
}

func (a *App) renderCart(cur session.Screen) string {
	kind := cartKindForCartScreen(cur)
	cart := a.store.State().Cart(kind)
	out := titleStyle.Render(cartTitle(kind)) + "\n"
	if cart.Empty() {
		out += "Your cart is empty.\n[esc] Back"
		return a.withStatus(out)
	}
	out += "From " + cart.VendorName + "\n"
	for i, l := range cart.Lines {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %dx %-28s %8s\n", marker, l.Qty, l.Name, a.money(l.UnitPrice.Mul(decimalFromInt(l.Qty))))
	}
	out += fmt.Sprintf("Subtotal: %s\n", a.money(cart.Subtotal()))
	out += "[+/-] Quantity  [x] Clear  [enter] Checkout  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderCheckout(cur session.Screen) string {
	kind := cartKindForCartScreen(cur)
	st := a.store.State()
	cart := st.Cart(kind)
	out := titleStyle.Render("Checkout") + "\n"
	out += "From " + cart.VendorName + "\n"
	out += fmt.Sprintf("%d items, subtotal %s\n\n", len(cart.Lines), a.money(cart.Subtotal()))
	out += "Deliver to: " + a.checkoutAddress().Display() + "\n"
	card := a.checkoutCard()
	out += fmt.Sprintf("Pay with: %s ****%s\n\n", card.Brand, card.Last4)
	if a.paymentToken != "" {
		out += "Processing payment...\n"
	}
	out += "[enter] Place order  [a] Address  [p] Payment method  [esc] Back"
	return a.withStatus(out)
}

func (a *App) renderCartWarning() string {
	st := a.store.State()
	out := titleStyle.Render("Replace cart?") + "\n"
	if pa := st.PendingAction; pa != nil {
		cart := st.Cart(pa.Kind)
		out += fmt.Sprintf("Your cart has items from %s.\nAdding %q from %s will clear it.\n", cart.VendorName, pa.Line.Name, pa.VendorName)
	}
	out += "[y] Replace  [n] Keep my cart"
	return a.withStatus(out)
}
