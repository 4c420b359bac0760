package session

import (
	"errors"
	"fmt"

	"github.com/soukapp/souk/internal/catalog"
)

// ErrMissingSelection is returned when a screen reads a selection that was
// never staged before navigation. The original wireframes dereferenced nil
// here; the store makes the failure explicit so callers can fall back.
var ErrMissingSelection = errors.New("required selection missing")

// MissingSelectionError wraps ErrMissingSelection with the screen and field.
type MissingSelectionError struct {
	Screen Screen
	Field  string
}

func (e *MissingSelectionError) Error() string {
	return fmt.Sprintf("screen %s: %s: %v", e.Screen, e.Field, ErrMissingSelection)
}

func (e *MissingSelectionError) Unwrap() error { return ErrMissingSelection }

// Store owns the session state and the current screen. All mutation goes
// through Navigate; the patch application and the screen change are observed
// together by the next render (single-threaded update loop, no intermediate
// render between them).
type Store struct {
	state   *State
	current Screen
}

// NewStore wraps state with the splash screen current.
func NewStore(state *State) *Store {
	if state == nil {
		state = NewState()
	}
	return &Store{state: state, current: ScreenSplash}
}

// Navigate applies patches in order, then sets the current screen. A screen
// outside the closed enumeration is a programming defect, not a recoverable
// condition.
func (st *Store) Navigate(screen Screen, patches ...Patch) {
	if !screen.Valid() {
		panic(fmt.Sprintf("session: navigate to unknown screen %q", screen))
	}
	for _, p := range patches {
		p.apply(st.state)
	}
	st.current = screen
}

// Apply applies patches without changing the current screen. Used by
// asynchronous completions that must not move the user.
func (st *Store) Apply(patches ...Patch) {
	for _, p := range patches {
		p.apply(st.state)
	}
}

// Current returns the current screen.
func (st *Store) Current() Screen { return st.current }

// State exposes the session state for reads. Screens treat it as read-only;
// writes go through patches.
func (st *Store) State() *State { return st.state }

// RequireVendor returns the staged vendor or a MissingSelectionError naming
// the screen that needed it.
func (st *Store) RequireVendor(screen Screen) (*catalog.Vendor, error) {
	if st.state.SelectedVendor == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "vendor"}
	}
	return st.state.SelectedVendor, nil
}

// RequireService returns the staged service or a MissingSelectionError.
func (st *Store) RequireService(screen Screen) (*catalog.Service, error) {
	if st.state.SelectedService == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "service"}
	}
	return st.state.SelectedService, nil
}

// RequireItem returns the staged catalog item or a MissingSelectionError.
func (st *Store) RequireItem(screen Screen) (*catalog.Item, error) {
	if st.state.SelectedItem == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "item"}
	}
	return st.state.SelectedItem, nil
}

// RequireProperty returns the staged property or a MissingSelectionError.
func (st *Store) RequireProperty(screen Screen) (*catalog.Property, error) {
	if st.state.SelectedProperty == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "property"}
	}
	return st.state.SelectedProperty, nil
}

// RequireRideProvider returns the staged ride provider or a MissingSelectionError.
func (st *Store) RequireRideProvider(screen Screen) (*catalog.RideProvider, error) {
	if st.state.SelectedRideProvider == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "rideProvider"}
	}
	return st.state.SelectedRideProvider, nil
}

// RequireCompanion returns the staged companion or a MissingSelectionError.
func (st *Store) RequireCompanion(screen Screen) (*catalog.Companion, error) {
	if st.state.SelectedCompanion == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "companion"}
	}
	return st.state.SelectedCompanion, nil
}

// RequireDraft returns the live draft or a MissingSelectionError.
func (st *Store) RequireDraft(screen Screen) (*Draft, error) {
	if st.state.Draft == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "draft"}
	}
	return st.state.Draft, nil
}

// RequirePendingAction returns the staged cart action or a MissingSelectionError.
func (st *Store) RequirePendingAction(screen Screen) (*PendingCartAction, error) {
	if st.state.PendingAction == nil {
		return nil, &MissingSelectionError{Screen: screen, Field: "pendingCartAction"}
	}
	return st.state.PendingAction, nil
}
