package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/soukapp/souk/internal/catalog"
	"github.com/soukapp/souk/internal/session"
)

// openVendor stages a vendor selection and routes to the detail screen for
// its category, loading whatever that screen lists.
func (a *App) openVendor(v catalog.Vendor, from session.Screen) (tea.Model, tea.Cmd) {
	vendor := v
	switch v.Category {
	case catalog.VendorCleaning:
		a.navigate(session.ScreenCleaningProviderDetail, session.SelectVendor{Vendor: &vendor})
		return a, a.loadServices(v.ID)
	case catalog.VendorHandyman:
		a.navigate(session.ScreenHandymanProviderDetail, session.SelectVendor{Vendor: &vendor})
		return a, a.loadServices(v.ID)
	case catalog.VendorBeauty:
		a.navigate(session.ScreenBeautyProviderDetail, session.SelectVendor{Vendor: &vendor})
		return a, a.loadServices(v.ID)
	case catalog.VendorRestaurant:
		a.navigate(session.ScreenRestaurantDetail, session.SelectVendor{Vendor: &vendor})
		return a, a.loadItems(v.ID)
	case catalog.VendorGrocery:
		a.navigate(session.ScreenGroceryStoreDetail, session.SelectVendor{Vendor: &vendor})
		return a, a.loadItems(v.ID)
	}
	a.status = "Unknown vendor category."
	a.navigate(from)
	return a, nil
}

func (a *App) loadFavorites() tea.Cmd {
	favs := a.store.State().Favorites
	ids := make([]string, 0, len(favs))
	for id := range favs {
		ids = append(ids, id)
	}
	return func() tea.Msg {
		list, err := a.catalog.VendorsByIDs(a.ctx, ids)
		if err != nil {
			return errMsg{err}
		}
		return vendorsMsg(list)
	}
}

// handleVendorListKey drives every vendor-list screen (the five category
// homes plus favorites).
func (a *App) handleVendorListKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
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
		if a.cursor < len(a.vendors)-1 {
			a.cursor++
		}
		return a, nil
	case "c":
		if kind, ok := cartKindForScreen(cur); ok {
			a.navigate(session.CartScreen(kind))
		}
		return a, nil
	case "enter":
		if len(a.vendors) == 0 {
			return a, nil
		}
		return a.openVendor(a.vendors[a.cursor], cur)
	}
	return a, nil
}

// handleProviderDetailKey drives the service-provider detail screens, which
// list the vendor's bookable services.
func (a *App) handleProviderDetailKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	back := providerListScreen(cur)
	switch m.String() {
	case "esc":
		a.navigate(back)
		return a, a.loadVendors(vendorCategoryForList(back))
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(a.services)-1 {
			a.cursor++
		}
		return a, nil
	case "f":
		if v, err := a.store.RequireVendor(cur); err == nil {
			a.navigate(cur, session.ToggleFavorite{VendorID: v.ID})
			a.status = "Favorites updated."
		}
		return a, nil
	case "s":
		// Beauty providers also sell products.
		if cur == session.ScreenBeautyProviderDetail {
			v, err := a.store.RequireVendor(cur)
			if err != nil {
				return a.missingSelection(err, session.ScreenBeautyHome)
			}
			a.navigate(session.ScreenBeautyShop)
			return a, a.loadItems(v.ID)
		}
		return a, nil
	case "enter":
		if len(a.services) == 0 {
			return a, nil
		}
		svc := a.services[a.cursor]
		a.navigate(serviceDetailScreen(cur), session.SelectService{Service: &svc})
		return a, nil
	}
	return a, nil
}

// handleServiceDetailKey drives the single-service detail screens.
func (a *App) handleServiceDetailKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.navigate(providerDetailScreen(cur))
		return a, nil
	case "enter", "b":
		switch cur {
		case session.ScreenCleaningServiceDetail:
			a.form = newCleaningForm()
			a.navigate(session.ScreenCleaningBookingForm)
		case session.ScreenHandymanServiceDetail:
			a.form = newHandymanForm()
			a.navigate(session.ScreenHandymanBookingForm)
		case session.ScreenBeautyServiceDetail:
			a.form = newBeautyForm()
			a.navigate(session.ScreenBeautyBookingForm)
		}
		return a, nil
	}
	return a, nil
}

// handleStoreDetailKey drives the screens that list orderable items
// (restaurant menu, grocery aisles, beauty shop).
func (a *App) handleStoreDetailKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	kind, _ := cartKindForScreen(cur)
	switch m.String() {
	case "esc":
		back := storeBackScreen(cur)
		a.navigate(back)
		if back == session.ScreenBeautyProviderDetail {
			if v, err := a.store.RequireVendor(cur); err == nil {
				return a, a.loadServices(v.ID)
			}
			return a, nil
		}
		return a, a.loadVendors(vendorCategoryForList(back))
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
		return a, nil
	case "c":
		a.navigate(session.CartScreen(kind))
		return a, nil
	case "a":
		if len(a.items) == 0 {
			return a, nil
		}
		return a.addItemToCart(a.items[a.cursor], kind, cur)
	case "enter":
		if len(a.items) == 0 {
			return a, nil
		}
		it := a.items[a.cursor]
		a.navigate(itemDetailScreen(cur), session.SelectItem{Item: &it})
		return a, nil
	}
	return a, nil
}

// handleItemDetailKey drives the single-item detail screens.
func (a *App) handleItemDetailKey(m tea.KeyMsg, cur session.Screen) (tea.Model, tea.Cmd) {
	parent := storeScreenForItem(cur)
	kind, _ := cartKindForScreen(parent)
	switch m.String() {
	case "esc":
		a.navigate(parent)
		return a, nil
	case "a", "enter":
		it, err := a.store.RequireItem(cur)
		if err != nil {
			return a.missingSelection(err, parent)
		}
		return a.addItemToCart(*it, kind, parent)
	}
	return a, nil
}

// addItemToCart runs the single-vendor rule and applies the resulting plan.
func (a *App) addItemToCart(it catalog.Item, kind session.CartKind, returnTo session.Screen) (tea.Model, tea.Cmd) {
	vendor, err := a.store.RequireVendor(a.store.Current())
	if err != nil {
		return a.missingSelection(err, returnTo)
	}
	line := session.CartLine{ItemID: it.ID, Name: it.Name, UnitPrice: it.Price, Qty: 1}
	plan := session.PlanCartAdd(a.store.State(), kind, vendor.ID, vendor.Name, line, returnTo)
	a.applyPlan(plan)
	if !plan.Staged {
		a.status = it.Name + " added to cart."
	}
	return a, nil
}

// missingSelection surfaces a required-selection failure and falls back.
func (a *App) missingSelection(err error, fallback session.Screen) (tea.Model, tea.Cmd) {
	a.status = "Selection expired, pick again."
	a.log.Warn("missing selection", zap.Error(err))
	a.navigate(fallback)
	return a, nil
}

// --- screen relationship tables -------------------------------------------

func cartKindForScreen(s session.Screen) (session.CartKind, bool) {
	switch s {
	case session.ScreenFoodHome, session.ScreenRestaurantDetail, session.ScreenFoodItemDetail:
		return session.CartFood, true
	case session.ScreenGroceryHome, session.ScreenGroceryStoreDetail, session.ScreenGroceryItemDetail:
		return session.CartGrocery, true
	case session.ScreenBeautyShop, session.ScreenBeautyProductDetail:
		return session.CartBeautyProducts, true
	}
	return "", false
}

func providerListScreen(detail session.Screen) session.Screen {
	switch detail {
	case session.ScreenCleaningProviderDetail:
		return session.ScreenCleaningHome
	case session.ScreenHandymanProviderDetail:
		return session.ScreenHandymanHome
	case session.ScreenBeautyProviderDetail:
		return session.ScreenBeautyHome
	}
	return session.ScreenHome
}

func providerDetailScreen(serviceDetail session.Screen) session.Screen {
	switch serviceDetail {
	case session.ScreenCleaningServiceDetail:
		return session.ScreenCleaningProviderDetail
	case session.ScreenHandymanServiceDetail:
		return session.ScreenHandymanProviderDetail
	case session.ScreenBeautyServiceDetail:
		return session.ScreenBeautyProviderDetail
	}
	return session.ScreenHome
}

func serviceDetailScreen(providerDetail session.Screen) session.Screen {
	switch providerDetail {
	case session.ScreenCleaningProviderDetail:
		return session.ScreenCleaningServiceDetail
	case session.ScreenHandymanProviderDetail:
		return session.ScreenHandymanServiceDetail
	case session.ScreenBeautyProviderDetail:
		return session.ScreenBeautyServiceDetail
	}
	return session.ScreenHome
}

func itemDetailScreen(store session.Screen) session.Screen {
	switch store {
	case session.ScreenRestaurantDetail:
		return session.ScreenFoodItemDetail
	case session.ScreenGroceryStoreDetail:
		return session.ScreenGroceryItemDetail
	case session.ScreenBeautyShop:
		return session.ScreenBeautyProductDetail
	}
	return session.ScreenHome
}

func storeScreenForItem(item session.Screen) session.Screen {
	switch item {
	case session.ScreenFoodItemDetail:
		return session.ScreenRestaurantDetail
	case session.ScreenGroceryItemDetail:
		return session.ScreenGroceryStoreDetail
	case session.ScreenBeautyProductDetail:
		return session.ScreenBeautyShop
	}
	return session.ScreenHome
}

func storeBackScreen(store session.Screen) session.Screen {
	switch store {
	case session.ScreenRestaurantDetail:
		return session.ScreenFoodHome
	case session.ScreenGroceryStoreDetail:
		return session.ScreenGroceryHome
	case session.ScreenBeautyShop:
		return session.ScreenBeautyProviderDetail
	}
	return session.ScreenHome
}

func vendorCategoryForList(list session.Screen) string {
	switch list {
	case session.ScreenCleaningHome:
		return catalog.VendorCleaning
	case session.ScreenHandymanHome:
		return catalog.VendorHandyman
	case session.ScreenBeautyHome:
		return catalog.VendorBeauty
	case session.ScreenFoodHome:
		return catalog.VendorRestaurant
	case session.ScreenGroceryHome:
		return catalog.VendorGrocery
	}
	return ""
}
