package session

// CartAddPlan is the outcome of planning an add-to-cart: the patches to apply
// and the screen to land on, as one navigate call.
type CartAddPlan struct {
	Patches []Patch
	Screen  Screen
	Staged  bool // true when the add was deferred to the warning screen
}

// PlanCartAdd implements the single-vendor-per-cart rule. If the cart is
// empty or already bound to the item's vendor, the add happens directly and
// the user stays on returnTo. Otherwise nothing touches the cart: the add is
// staged as a pending action and the user is routed to the replacement
// warning screen.
func PlanCartAdd(s *State, kind CartKind, vendorID, vendorName string, line CartLine, returnTo Screen) CartAddPlan {
	c := s.Cart(kind)
	if c.Empty() || c.VendorID == vendorID {
		return CartAddPlan{
			Patches: []Patch{AddCartItem{Kind: kind, VendorID: vendorID, VendorName: vendorName, Line: line}},
			Screen:  returnTo,
		}
	}
	return CartAddPlan{
		Patches: []Patch{StageCartAction{Action: PendingCartAction{
			Kind:       kind,
			VendorID:   vendorID,
			VendorName: vendorName,
			Line:       line,
			ReturnTo:   returnTo,
		}}},
		Screen: ScreenCartReplaceWarning,
		Staged: true,
	}
}

// PlanCartReplaceConfirm resolves the warning screen with "replace": the old
// cart is discarded, a fresh cart is bound to the new vendor with the staged
// line, and the user returns to the vendor detail screen.
func PlanCartReplaceConfirm(s *State) CartAddPlan {
	a := s.PendingAction
	if a == nil {
		// Nothing staged; treated as cancel.
		return CartAddPlan{Screen: ScreenHome}
	}
	return CartAddPlan{
		Patches: []Patch{
			ReplaceCart{Kind: a.Kind, VendorID: a.VendorID, VendorName: a.VendorName, Line: a.Line},
			ClearCartAction{},
		},
		Screen: a.ReturnTo,
	}
}

// PlanCartReplaceCancel resolves the warning screen with "keep": only the
// staged action is dropped, the cart is untouched.
func PlanCartReplaceCancel(s *State) CartAddPlan {
	a := s.PendingAction
	screen := ScreenHome
	if a != nil {
		screen = a.ReturnTo
	}
	return CartAddPlan{
		Patches: []Patch{ClearCartAction{}},
		Screen:  screen,
	}
}

// CartScreen maps a cart kind to its cart screen.
func CartScreen(kind CartKind) Screen {
	switch kind {
	case CartFood:
		return ScreenFoodCart
	case CartGrocery:
		return ScreenGroceryCart
	case CartBeautyProducts:
		return ScreenBeautyCart
	}
	return ScreenHome
}

// CheckoutScreen maps a cart kind to its checkout screen.
func CheckoutScreen(kind CartKind) Screen {
	switch kind {
	case CartFood:
		return ScreenFoodCheckout
	case CartGrocery:
		return ScreenGroceryCheckout
	case CartBeautyProducts:
		return ScreenBeautyCheckout
	}
	return ScreenHome
}

// OrderKind maps a cart kind to the booking kind its checkout finalizes into.
func OrderKind(kind CartKind) BookingKind {
	switch kind {
	case CartFood:
		return KindFood
	case CartGrocery:
		return KindGrocery
	case CartBeautyProducts:
		return KindBeautyProducts
	}
	return ""
}
