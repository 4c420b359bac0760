package tui

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/soukapp/souk/internal/session"
)

// form is the shared wireframe input model: a titled list of labeled text
// fields with one focused. Forms validate only that required fields are
// non-empty; validation gates the submit, nothing more.
type form struct {
	title    string
	fields   []formField
	focus    int
	category session.Category // set for booking forms
}

type formField struct {
	label    string
	value    string
	required bool
}

func (f *form) next() { f.focus = (f.focus + 1) % len(f.fields) }

func (f *form) prev() {
	f.focus--
	if f.focus < 0 {
		f.focus = len(f.fields) - 1
	}
}

func (f *form) typeRune(r rune) { f.fields[f.focus].value += string(r) }

func (f *form) backspace() {
	v := f.fields[f.focus].value
	if v != "" {
		f.fields[f.focus].value = v[:len(v)-1]
	}
}

func (f *form) value(label string) string {
	for _, fd := range f.fields {
		if fd.label == label {
			return strings.TrimSpace(fd.value)
		}
	}
	return ""
}

func (f *form) intValue(label string, fallback int) int {
	n, err := strconv.Atoi(f.value(label))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// complete reports whether every required field is non-empty.
func (f *form) complete() bool {
	for _, fd := range f.fields {
		if fd.required && strings.TrimSpace(fd.value) == "" {
			return false
		}
	}
	return true
}

// --- form builders --------------------------------------------------------

func newSignInForm(email string) *form {
	return &form{title: "Sign in", fields: []formField{
		{label: "Email", value: email, required: true},
		{label: "Password", required: true},
	}}
}

func newSignUpForm() *form {
	return &form{title: "Create account", fields: []formField{
		{label: "Name", required: true},
		{label: "Email", required: true},
		{label: "Password", required: true},
	}}
}

func newEditProfileForm(name, email string) *form {
	return &form{title: "Edit profile", fields: []formField{
		{label: "Name", value: name, required: true},
		{label: "Email", value: email, required: true},
	}}
}

func newAddressForm() *form {
	return &form{title: "New address", fields: []formField{
		{label: "Label", value: "Home", required: true},
		{label: "Street", required: true},
		{label: "City", required: true},
		{label: "State"},
		{label: "Zip"},
	}}
}

func newCardForm() *form {
	return &form{title: "New card", fields: []formField{
		{label: "Brand", value: "Visa", required: true},
		{label: "Last 4 digits", required: true},
		{label: "Holder", required: true},
		{label: "Expiry (MM/YY)", required: true},
		{label: "Label"},
	}}
}

func newCleaningForm() *form {
	return &form{title: "Book cleaning", category: session.CategoryCleaning, fields: []formField{
		{label: "Date", required: true},
		{label: "Time", required: true},
		{label: "Bedrooms", value: "2"},
		{label: "Bathrooms", value: "1"},
		{label: "Instructions"},
	}}
}

func newHandymanForm() *form {
	return &form{title: "Book handyman", category: session.CategoryHandyman, fields: []formField{
		{label: "Date", required: true},
		{label: "Time", required: true},
		{label: "Job description", required: true},
		{label: "Urgent (y/n)", value: "n"},
	}}
}

func newBeautyForm() *form {
	return &form{title: "Book appointment", category: session.CategoryBeauty, fields: []formField{
		{label: "Date", required: true},
		{label: "Time", required: true},
		{label: "At home (y/n)", value: "n"},
		{label: "Notes"},
	}}
}

func newRentalDatesForm() *form {
	return &form{title: "Choose dates", category: session.CategoryRental, fields: []formField{
		{label: "Check-in", required: true},
		{label: "Check-out", required: true},
	}}
}

func newRentalForm(checkIn, checkOut string) *form {
	return &form{title: "Confirm stay", category: session.CategoryRental, fields: []formField{
		{label: "Check-in", value: checkIn, required: true},
		{label: "Check-out", value: checkOut, required: true},
		{label: "Guests", value: "2", required: true},
		{label: "Nights", value: "1", required: true},
	}}
}

func newRideForm(pickup string) *form {
	return &form{title: "Book ride", category: session.CategoryCareRide, fields: []formField{
		{label: "Pickup", value: pickup, required: true},
		{label: "Dropoff", required: true},
		{label: "Date", required: true},
		{label: "Time", required: true},
		{label: "Wheelchair (y/n)", value: "n"},
	}}
}

func newCompanionForm() *form {
	return &form{title: "Book companionship", category: session.CategoryCareCompanion, fields: []formField{
		{label: "Date", required: true},
		{label: "Time", required: true},
		{label: "Hours", value: "2", required: true},
		{label: "Activities"},
	}}
}

func newReviewForm() *form {
	return &form{title: "Leave a review", fields: []formField{
		{label: "Rating (1-5)", value: "5", required: true},
		{label: "Comment"},
	}}
}

func yes(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "y" || v == "yes"
}

// --- draft builders -------------------------------------------------------
// Each booking form resolves into a Draft built from the staged selections
// plus the form values. The store guarantees selections via Require*; a
// missing selection surfaces as an error, not a nil dereference.

func (a *App) buildServiceDraft(f *form) (session.Draft, error) {
	cur := a.store.Current()
	vendor, err := a.store.RequireVendor(cur)
	if err != nil {
		return session.Draft{}, err
	}
	svc, err := a.store.RequireService(cur)
	if err != nil {
		return session.Draft{}, err
	}

	d := session.Draft{
		Category: f.category,
		Vendor:   session.VendorRef{ID: vendor.ID, Name: vendor.Name, Rating: vendor.Rating, Area: vendor.Area},
		Service:  session.ServiceRef{ID: svc.ID, Name: svc.Name, Price: svc.Price, DurationMin: svc.DurationMin},
		Address:  a.checkoutAddress(),
		Payment:  a.checkoutCard(),
		Schedule: session.Schedule{Date: f.value("Date"), Time: f.value("Time")},
		Total:    svc.Price,
	}
	switch f.category {
	case session.CategoryCleaning:
		d.Cleaning = &session.CleaningDetails{
			Bedrooms:     f.intValue("Bedrooms", 2),
			Bathrooms:    f.intValue("Bathrooms", 1),
			Instructions: f.value("Instructions"),
		}
	case session.CategoryHandyman:
		d.Handyman = &session.HandymanDetails{
			JobType:     svc.Name,
			Description: f.value("Job description"),
			Urgent:      yes(f.value("Urgent (y/n)")),
		}
	case session.CategoryBeauty:
		d.Beauty = &session.BeautyDetails{
			AtHome: yes(f.value("At home (y/n)")),
			Notes:  f.value("Notes"),
		}
	}
	return d, nil
}

func (a *App) buildRentalDraft(f *form) (session.Draft, error) {
	prop, err := a.store.RequireProperty(a.store.Current())
	if err != nil {
		return session.Draft{}, err
	}
	nights := f.intValue("Nights", 1)
	total := prop.Nightly.Mul(decimal.NewFromInt(int64(nights)))
	return session.Draft{
		Category: session.CategoryRental,
		Vendor:   session.VendorRef{ID: prop.ID, Name: prop.Title, Rating: prop.Rating, Area: prop.Area},
		Service:  session.ServiceRef{Name: strconv.Itoa(nights) + "-night stay", Price: total},
		Address:  session.Address{Label: prop.Title, Street: prop.Area, City: prop.City},
		Payment:  a.checkoutCard(),
		Schedule: session.Schedule{Date: f.value("Check-in"), EndDate: f.value("Check-out")},
		Total:    total,
		Rental: &session.RentalDetails{
			PropertyID: prop.ID,
			Guests:     f.intValue("Guests", 2),
			Nights:     nights,
			CheckIn:    f.value("Check-in"),
			CheckOut:   f.value("Check-out"),
		},
	}, nil
}

func (a *App) buildRideDraft(f *form) (session.Draft, error) {
	rp, err := a.store.RequireRideProvider(a.store.Current())
	if err != nil {
		return session.Draft{}, err
	}
	// Flat fare estimate: base plus five kilometres.
	total := rp.BaseFare.Add(rp.PerKM.Mul(decimal.NewFromInt(5)))
	return session.Draft{
		Category: session.CategoryCareRide,
		Vendor:   session.VendorRef{ID: rp.ID, Name: rp.Name, Rating: rp.Rating},
		Service:  session.ServiceRef{Name: "Ride (" + rp.VehicleType + ")", Price: total, DurationMin: 30},
		Address:  session.Address{Label: f.value("Pickup"), Street: f.value("Pickup")},
		Payment:  a.checkoutCard(),
		Schedule: session.Schedule{Date: f.value("Date"), Time: f.value("Time")},
		Total:    total,
		Ride: &session.RideDetails{
			ProviderID: rp.ID,
			Pickup:     f.value("Pickup"),
			Dropoff:    f.value("Dropoff"),
			Wheelchair: yes(f.value("Wheelchair (y/n)")),
		},
	}, nil
}

func (a *App) buildCompanionDraft(f *form) (session.Draft, error) {
	c, err := a.store.RequireCompanion(a.store.Current())
	if err != nil {
		return session.Draft{}, err
	}
	hours := f.intValue("Hours", 2)
	total := c.HourlyRate.Mul(decimal.NewFromInt(int64(hours)))
	return session.Draft{
		Category: session.CategoryCareCompanion,
		Vendor:   session.VendorRef{ID: c.ID, Name: c.Name, Rating: c.Rating},
		Service:  session.ServiceRef{Name: "Companionship visit", Price: total, DurationMin: hours * 60},
		Address:  a.checkoutAddress(),
		Payment:  a.checkoutCard(),
		Schedule: session.Schedule{Date: f.value("Date"), Time: f.value("Time")},
		Total:    total,
		Companion: &session.CompanionDetails{
			CompanionID: c.ID,
			Hours:       hours,
			Activities:  f.value("Activities"),
		},
	}, nil
}
