package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/soukapp/souk/internal/catalog"
	"github.com/soukapp/souk/internal/config"
	"github.com/soukapp/souk/internal/service"
	"github.com/soukapp/souk/internal/session"
)

// App is the root Bubble Tea model: the screen registry, the session store
// and the catalog wired together. Every user action resolves to exactly one
// Store.Navigate call; asynchronous completions apply patches without moving
// the user.
type App struct {
	ctx      context.Context
	cfg      config.Config
	store    *session.Store
	catalog  *catalog.Repo
	bookings *service.BookingService
	payments *service.PaymentSimulator
	log      *zap.Logger

	// Catalog data loaded for the current browse screen.
	vendors    []catalog.Vendor
	services   []catalog.Service
	items      []catalog.Item
	properties []catalog.Property
	rides      []catalog.RideProvider
	companions []catalog.Companion
	results    []catalog.Vendor

	// Per-screen UI state.
	cursor    int
	status    string
	input     string
	form      *form
	bookingID string // history entry the detail/review screens refer to
	searched  bool   // search input executed since last edit

	// Payment flow. Only the completion carrying the active token may
	// finalize; anything else is a stale timer from an abandoned flow.
	paymentToken string
	orderKind    session.CartKind // non-empty while a cart checkout is paying

	width  int
	height int
}

// Services bundles the collaborators the App needs.
type Services struct {
	Catalog  *catalog.Repo
	Bookings *service.BookingService
	Payments *service.PaymentSimulator
}

// New builds the app around a seeded session store.
func New(ctx context.Context, cfg config.Config, store *session.Store, svcs Services, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		store:    store,
		catalog:  svcs.Catalog,
		bookings: svcs.Bookings,
		payments: svcs.Payments,
		log:      log,
	}
}

// Store exposes the session store, mainly for tests.
func (a *App) Store() *session.Store { return a.store }

func (a *App) Init() tea.Cmd {
	return tea.Tick(splashDelay, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

const splashDelay = 800 * time.Millisecond

// navigate is the single funnel between screen callbacks and the store.
func (a *App) navigate(screen session.Screen, patches ...session.Patch) {
	from := a.store.Current()
	a.store.Navigate(screen, patches...)
	a.cursor = 0
	a.log.Debug("navigate",
		zap.String("from", string(from)),
		zap.String("to", string(screen)),
		zap.Int("patches", len(patches)))
}

// applyPlan executes a cart plan as one navigate call.
func (a *App) applyPlan(plan session.CartAddPlan) {
	a.navigate(plan.Screen, plan.Patches...)
	if plan.Staged {
		a.status = "This item is from a different vendor."
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil

	case splashDoneMsg:
		if a.store.Current() == session.ScreenSplash {
			a.navigate(session.ScreenOnboarding)
		}
		return a, nil

	case vendorsMsg:
		a.vendors = m
		return a, nil
	case servicesMsg:
		a.services = m
		return a, nil
	case itemsMsg:
		a.items = m
		return a, nil
	case propertiesMsg:
		a.properties = m
		return a, nil
	case ridesMsg:
		a.rides = m
		return a, nil
	case companionsMsg:
		a.companions = m
		return a, nil
	case searchResultsMsg:
		a.results = m
		return a, nil

	case statusMsg:
		a.status = string(m)
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.Error("command failed", zap.Error(m.error))
		return a, nil

	case paymentDoneMsg:
		return a.handlePaymentDone(m)

	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

// handlePaymentDone finalizes the paying flow, or drops the completion when
// its token no longer matches the flow the user is in.
func (a *App) handlePaymentDone(m paymentDoneMsg) (tea.Model, tea.Cmd) {
	if m.token == "" || m.token != a.paymentToken {
		a.payments.ReportStale(m.token)
		return a, nil
	}
	a.paymentToken = ""
	st := a.store.State()

	if a.orderKind != "" {
		kind := a.orderKind
		a.orderKind = ""
		cart := *st.Cart(kind)
		addr, card := a.checkoutAddress(), a.checkoutCard()
		b := a.bookings.FinalizeOrder(kind, cart, addr, card)
		a.navigate(orderConfirmationScreen(kind),
			session.AppendBooking{Booking: b},
			session.ClearCart{Kind: kind},
			session.PushNotification{Notification: a.bookings.ConfirmationNotification(b)},
		)
		return a, nil
	}

	draft, err := a.store.RequireDraft(a.store.Current())
	if err != nil {
		a.status = "Nothing to finalize."
		a.navigate(session.ScreenHome)
		return a, nil
	}
	b := a.bookings.FinalizeDraft(*draft)
	a.navigate(confirmationScreen(draft.Category),
		session.AppendBooking{Booking: b},
		session.PushNotification{Notification: a.bookings.ConfirmationNotification(b)},
	)
	return a, nil
}

// beginPayment starts the simulated round trip for the current flow.
func (a *App) beginPayment() tea.Cmd {
	token := a.payments.Begin()
	a.paymentToken = token
	return tea.Tick(a.payments.ProcessingDelay(), func(time.Time) tea.Msg {
		return paymentDoneMsg{token: token}
	})
}

// abandonPayment clears the active token so a timer already in flight lands
// stale.
func (a *App) abandonPayment() {
	if a.paymentToken != "" {
		a.log.Info("payment flow abandoned", zap.String("flow", a.paymentToken))
		a.paymentToken = ""
	}
}

func (a *App) checkoutAddress() session.Address {
	st := a.store.State()
	for _, ad := range st.Addresses {
		if ad.ID == st.SelectedAddressID {
			return ad
		}
	}
	if d := st.DefaultAddress(); d != nil {
		return *d
	}
	return session.Address{Label: st.Location}
}

func (a *App) checkoutCard() session.PaymentCard {
	if c := a.store.State().DefaultCard(); c != nil {
		return *c
	}
	return session.PaymentCard{Brand: "Card", Last4: "0000", Label: "Pay on delivery"}
}

// --- Bubble Tea messages --------------------------------------------------

type splashDoneMsg struct{}

type paymentDoneMsg struct{ token string }

type vendorsMsg []catalog.Vendor

type servicesMsg []catalog.Service

type itemsMsg []catalog.Item

type propertiesMsg []catalog.Property

type ridesMsg []catalog.RideProvider

type companionsMsg []catalog.Companion

type searchResultsMsg []catalog.Vendor

type statusMsg string

type errMsg struct{ error }

// --- catalog loaders ------------------------------------------------------

func (a *App) loadVendors(category string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.VendorsByCategory(a.ctx, category)
		if err != nil {
			return errMsg{err}
		}
		return vendorsMsg(list)
	}
}

func (a *App) loadServices(vendorID string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.ServicesByVendor(a.ctx, vendorID)
		if err != nil {
			return errMsg{err}
		}
		return servicesMsg(list)
	}
}

func (a *App) loadItems(vendorID string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.ItemsByVendor(a.ctx, vendorID)
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg(list)
	}
}

func (a *App) loadProperties() tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.Properties(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return propertiesMsg(list)
	}
}

func (a *App) loadRides() tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.RideProviders(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return ridesMsg(list)
	}
}

func (a *App) loadCompanions() tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.Companions(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return companionsMsg(list)
	}
}

func (a *App) searchVendors(query string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.SearchVendors(a.ctx, query)
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg(list)
	}
}

// --- screen group helpers -------------------------------------------------

func confirmationScreen(c session.Category) session.Screen {
	switch c {
	case session.CategoryCleaning:
		return session.ScreenCleaningConfirmation
	case session.CategoryHandyman:
		return session.ScreenHandymanConfirmation
	case session.CategoryBeauty:
		return session.ScreenBeautyConfirmation
	case session.CategoryRental:
		return session.ScreenRentalConfirmation
	case session.CategoryCareRide:
		return session.ScreenRideConfirmation
	case session.CategoryCareCompanion:
		return session.ScreenCompanionConfirmation
	}
	return session.ScreenHome
}

func trackingScreen(c session.Category) session.Screen {
	switch c {
	case session.CategoryCleaning:
		return session.ScreenCleaningTracking
	case session.CategoryHandyman:
		return session.ScreenHandymanTracking
	case session.CategoryBeauty:
		return session.ScreenBeautyTracking
	case session.CategoryRental:
		return session.ScreenRentalTracking
	case session.CategoryCareRide:
		return session.ScreenRideTracking
	case session.CategoryCareCompanion:
		return session.ScreenCompanionTracking
	}
	return session.ScreenBookingHistory
}

func paymentScreen(c session.Category) session.Screen {
	switch c {
	case session.CategoryCleaning:
		return session.ScreenCleaningPayment
	case session.CategoryHandyman:
		return session.ScreenHandymanPayment
	case session.CategoryBeauty:
		return session.ScreenBeautyPayment
	case session.CategoryRental:
		return session.ScreenRentalPayment
	case session.CategoryCareRide:
		return session.ScreenRidePayment
	case session.CategoryCareCompanion:
		return session.ScreenCompanionPayment
	}
	return session.ScreenHome
}

func orderConfirmationScreen(kind session.CartKind) session.Screen {
	switch kind {
	case session.CartFood:
		return session.ScreenFoodOrderConfirmation
	case session.CartGrocery:
		return session.ScreenGroceryOrderConfirmation
	case session.CartBeautyProducts:
		return session.ScreenBeautyOrderConfirmation
	}
	return session.ScreenHome
}

func orderTrackingScreen(kind session.CartKind) session.Screen {
	switch kind {
	case session.CartFood:
		return session.ScreenFoodOrderTracking
	case session.CartGrocery:
		return session.ScreenGroceryOrderTracking
	case session.CartBeautyProducts:
		return session.ScreenBeautyOrderTracking
	}
	return session.ScreenHome
}
