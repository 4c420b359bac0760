package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soukapp/souk/internal/session"
)

func cartKindForCartScreen(s session.Screen) session.CartKind {
	switch s {
	case session.ScreenFoodCart, session.ScreenFoodCheckout:
		return session.CartFood
	case session.ScreenGroceryCart, session.ScreenGroceryCheckout:
		return session.CartGrocery
	case session.ScreenBeautyCart, session.ScreenBeautyCheckout:
		return session.CartBeautyProducts
	}
	return session.CartFood
}

func cartBackScreen(kind session.CartKind) session.Screen {
	switch kind {
	case session.CartFood:
		return session.ScreenRestaurantDetail
	case session.CartGrocery:
		return session.ScreenGroceryStoreDetail
	case session.CartBeautyProducts:
		return session.ScreenBeautyShop
	}
	return session.ScreenHome
}

func (a *App) handleCartKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	kind := cartKindForCartScreen(cur)
	cart := a.store.State().Cart(kind)
	switch m.String() {
	case "esc":
		if a.store.State().SelectedVendor != nil {
			a.navigate(cartBackScreen(kind))
		} else {
			a.navigate(session.ScreenHome)
		}
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(cart.Lines)-1 {
			a.cursor++
		}
		return a, nil
	case "+", "right":
		if a.cursor < len(cart.Lines) {
			line := cart.Lines[a.cursor]
			a.navigate(cur, session.AddCartItem{
				Kind: kind, VendorID: cart.VendorID, VendorName: cart.VendorName, Line: line,
			})
		}
		return a, nil
	case "-", "left":
		if a.cursor < len(cart.Lines) {
			id := cart.Lines[a.cursor].ItemID
			a.navigate(cur, session.DecrementCartItem{Kind: kind, ItemID: id})
			if a.cursor >= len(a.store.State().Cart(kind).Lines) && a.cursor > 0 {
				a.cursor--
			}
		}
		return a, nil
	case "x":
		a.navigate(cur, session.ClearCart{Kind: kind})
		a.status = "Cart cleared."
		return a, nil
	case "enter", "c":
		if cart.Empty() {
			a.status = "Cart is empty."
			return a, nil
		}
		a.navigate(session.CheckoutScreen(kind))
		return a, nil
	}
	return a, nil
}

func (a *App) handleCheckoutKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	kind := cartKindForCartScreen(cur)
	switch m.String() {
	case "esc":
		// Leaving checkout abandons any in-flight payment.
		a.abandonPayment()
		a.orderKind = ""
		a.navigate(session.CartScreen(kind))
		return a, nil
	case "a":
		a.navigate(session.ScreenAddressList)
		return a, nil
	case "p":
		a.navigate(session.ScreenPaymentMethodList)
		return a, nil
	case "enter":
		if a.paymentToken != "" {
			return a, nil // already processing
		}
		if a.store.State().Cart(kind).Empty() {
			a.status = "Cart is empty."
			return a, nil
		}
		a.orderKind = kind
		a.status = "Processing payment..."
		return a, a.beginPayment()
	}
	return a, nil
}

// handleWarningKey resolves the cross-vendor replacement warning. Only an
// explicit confirm touches the cart.
func (a *App) handleWarningKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "y", "enter":
		a.applyPlan(session.PlanCartReplaceConfirm(a.store.State()))
		a.status = "Cart replaced."
	case "n", "esc":
		a.applyPlan(session.PlanCartReplaceCancel(a.store.State()))
		a.status = "Kept your cart."
	}
	return a, nil
}
