package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soukapp/souk/internal/catalog"
)

func TestNavigateAppliesPatchesBeforeSwitching(t *testing.T) {
	t.Parallel()

	st := NewStore(NewState())
	require.Equal(t, ScreenSplash, st.Current())

	v := &catalog.Vendor{ID: "v1", Name: "Sparkle Homes", Category: catalog.VendorCleaning}
	st.Navigate(ScreenCleaningProviderDetail, SelectVendor{Vendor: v})

	require.Equal(t, ScreenCleaningProviderDetail, st.Current())
	require.NotNil(t, st.State().SelectedVendor)
	require.Equal(t, "v1", st.State().SelectedVendor.ID)
}

func TestNavigatePanicsOnUnknownScreen(t *testing.T) {
	t.Parallel()

	st := NewStore(NewState())
	require.Panics(t, func() { st.Navigate(Screen("nope")) })
	// The failed call must not have moved the user.
	require.Equal(t, ScreenSplash, st.Current())
}

func TestNavigateWithoutPatchesOnlySwitches(t *testing.T) {
	t.Parallel()

	st := NewStore(NewState())
	st.Navigate(ScreenHome)
	require.Equal(t, ScreenHome, st.Current())
	require.Nil(t, st.State().SelectedVendor)
}

func TestApplyDoesNotMoveTheUser(t *testing.T) {
	t.Parallel()

	st := NewStore(NewState())
	st.Navigate(ScreenHome)
	st.Apply(PushNotification{Notification: Notification{ID: "n1", Title: "hi"}})

	require.Equal(t, ScreenHome, st.Current())
	require.Len(t, st.State().Notifications, 1)
}

func TestRequireSelectionsReturnTypedErrors(t *testing.T) {
	t.Parallel()

	st := NewStore(NewState())

	_, err := st.RequireVendor(ScreenCleaningProviderDetail)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingSelection)

	var msErr *MissingSelectionError
	require.ErrorAs(t, err, &msErr)
	require.Equal(t, ScreenCleaningProviderDetail, msErr.Screen)
	require.Equal(t, "vendor", msErr.Field)

	_, err = st.RequireService(ScreenCleaningServiceDetail)
	require.ErrorIs(t, err, ErrMissingSelection)
	_, err = st.RequireItem(ScreenFoodItemDetail)
	require.ErrorIs(t, err, ErrMissingSelection)
	_, err = st.RequireProperty(ScreenPropertyDetail)
	require.ErrorIs(t, err, ErrMissingSelection)
	_, err = st.RequireRideProvider(ScreenRideProviderDetail)
	require.ErrorIs(t, err, ErrMissingSelection)
	_, err = st.RequireCompanion(ScreenCompanionDetail)
	require.ErrorIs(t, err, ErrMissingSelection)
	_, err = st.RequireDraft(ScreenCleaningPayment)
	require.ErrorIs(t, err, ErrMissingSelection)
	_, err = st.RequirePendingAction(ScreenCartReplaceWarning)
	require.ErrorIs(t, err, ErrMissingSelection)
}

func TestRequireVendorAfterSelection(t *testing.T) {
	t.Parallel()

	st := NewStore(NewState())
	v := &catalog.Vendor{ID: "v2", Name: "Mama Njeri Kitchen", Category: catalog.VendorRestaurant}
	st.Navigate(ScreenRestaurantDetail, SelectVendor{Vendor: v})

	got, err := st.RequireVendor(ScreenRestaurantDetail)
	require.NoError(t, err)
	require.Equal(t, "v2", got.ID)
}

func TestScreenEnumerationIsClosed(t *testing.T) {
	t.Parallel()

	require.True(t, ScreenHome.Valid())
	require.True(t, ScreenCartReplaceWarning.Valid())
	require.False(t, Screen("checkout2").Valid())
	require.False(t, Screen("").Valid())
	require.Equal(t, 83, ScreenCount())
}

func TestMissingSelectionErrorUnwraps(t *testing.T) {
	t.Parallel()

	err := &MissingSelectionError{Screen: ScreenHome, Field: "vendor"}
	require.True(t, errors.Is(err, ErrMissingSelection))
	require.Contains(t, err.Error(), "vendor")
}
