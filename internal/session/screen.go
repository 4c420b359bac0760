package session

// Screen is one mutually exclusive view state of the application. Exactly one
// screen is current at any time; the initial screen is ScreenSplash.
type Screen string

const (
	// Entry and shared surfaces.
	ScreenSplash         Screen = "splash"
	ScreenOnboarding     Screen = "onboarding"
	ScreenSignIn         Screen = "signIn"
	ScreenSignUp         Screen = "signUp"
	ScreenHome           Screen = "home"
	ScreenSearch         Screen = "search"
	ScreenLocationPicker Screen = "locationPicker"
	ScreenProfile        Screen = "profile"
	ScreenEditProfile    Screen = "editProfile"
	ScreenSettings       Screen = "settings"
	ScreenNotifications  Screen = "notifications"
	ScreenBookingHistory Screen = "bookingHistory"
	ScreenBookingDetail  Screen = "bookingDetail"
	ScreenReviewForm     Screen = "reviewForm"
	ScreenFavorites      Screen = "favorites"
	ScreenHelp           Screen = "help"
	ScreenAbout          Screen = "about"

	// Address book and payment methods.
	ScreenAddressList       Screen = "addressList"
	ScreenAddressForm       Screen = "addressForm"
	ScreenPaymentMethodList Screen = "paymentMethodList"
	ScreenPaymentMethodForm Screen = "paymentMethodForm"

	// Cleaning flow.
	ScreenCleaningHome           Screen = "cleaningHome"
	ScreenCleaningProviderDetail Screen = "cleaningProviderDetail"
	ScreenCleaningServiceDetail  Screen = "cleaningServiceDetail"
	ScreenCleaningBookingForm    Screen = "cleaningBookingForm"
	ScreenCleaningPayment        Screen = "cleaningPayment"
	ScreenCleaningConfirmation   Screen = "cleaningConfirmation"
	ScreenCleaningTracking       Screen = "cleaningTracking"

	// Handyman flow.
	ScreenHandymanHome           Screen = "handymanHome"
	ScreenHandymanProviderDetail Screen = "handymanProviderDetail"
	ScreenHandymanServiceDetail  Screen = "handymanServiceDetail"
	ScreenHandymanBookingForm    Screen = "handymanBookingForm"
	ScreenHandymanPayment        Screen = "handymanPayment"
	ScreenHandymanConfirmation   Screen = "handymanConfirmation"
	ScreenHandymanTracking       Screen = "handymanTracking"

	// Beauty services flow.
	ScreenBeautyHome           Screen = "beautyHome"
	ScreenBeautyProviderDetail Screen = "beautyProviderDetail"
	ScreenBeautyServiceDetail  Screen = "beautyServiceDetail"
	ScreenBeautyBookingForm    Screen = "beautyBookingForm"
	ScreenBeautyPayment        Screen = "beautyPayment"
	ScreenBeautyConfirmation   Screen = "beautyConfirmation"
	ScreenBeautyTracking       Screen = "beautyTracking"

	// Beauty product shop flow.
	ScreenBeautyShop              Screen = "beautyShop"
	ScreenBeautyProductDetail     Screen = "beautyProductDetail"
	ScreenBeautyCart              Screen = "beautyCart"
	ScreenBeautyCheckout          Screen = "beautyCheckout"
	ScreenBeautyOrderConfirmation Screen = "beautyOrderConfirmation"
	ScreenBeautyOrderTracking     Screen = "beautyOrderTracking"

	// Food delivery flow.
	ScreenFoodHome              Screen = "foodHome"
	ScreenRestaurantDetail      Screen = "restaurantDetail"
	ScreenFoodItemDetail        Screen = "foodItemDetail"
	ScreenFoodCart              Screen = "foodCart"
	ScreenFoodCheckout          Screen = "foodCheckout"
	ScreenFoodOrderConfirmation Screen = "foodOrderConfirmation"
	ScreenFoodOrderTracking     Screen = "foodOrderTracking"

	// Grocery flow.
	ScreenGroceryHome              Screen = "groceryHome"
	ScreenGroceryStoreDetail       Screen = "groceryStoreDetail"
	ScreenGroceryItemDetail        Screen = "groceryItemDetail"
	ScreenGroceryCart              Screen = "groceryCart"
	ScreenGroceryCheckout          Screen = "groceryCheckout"
	ScreenGroceryOrderConfirmation Screen = "groceryOrderConfirmation"
	ScreenGroceryOrderTracking     Screen = "groceryOrderTracking"

	// Rental flow.
	ScreenRentalHome         Screen = "rentalHome"
	ScreenPropertyDetail     Screen = "propertyDetail"
	ScreenRentalDates        Screen = "rentalDates"
	ScreenRentalBookingForm  Screen = "rentalBookingForm"
	ScreenRentalPayment      Screen = "rentalPayment"
	ScreenRentalConfirmation Screen = "rentalConfirmation"
	ScreenRentalTracking     Screen = "rentalTracking"

	// Caregiving rides flow.
	ScreenCareHome           Screen = "careHome"
	ScreenRideProviders      Screen = "rideProviders"
	ScreenRideProviderDetail Screen = "rideProviderDetail"
	ScreenRideBookingForm    Screen = "rideBookingForm"
	ScreenRidePayment        Screen = "ridePayment"
	ScreenRideConfirmation   Screen = "rideConfirmation"
	ScreenRideTracking       Screen = "rideTracking"

	// Caregiving companionship flow.
	ScreenCompanionList         Screen = "companionList"
	ScreenCompanionDetail       Screen = "companionDetail"
	ScreenCompanionBookingForm  Screen = "companionBookingForm"
	ScreenCompanionPayment      Screen = "companionPayment"
	ScreenCompanionConfirmation Screen = "companionConfirmation"
	ScreenCompanionTracking     Screen = "companionTracking"

	// Cross-vendor cart replacement warning.
	ScreenCartReplaceWarning Screen = "cartReplaceWarning"
)

var allScreens = map[Screen]struct{}{
	ScreenSplash: {}, ScreenOnboarding: {}, ScreenSignIn: {}, ScreenSignUp: {},
	ScreenHome: {}, ScreenSearch: {}, ScreenLocationPicker: {}, ScreenProfile: {},
	ScreenEditProfile: {}, ScreenSettings: {}, ScreenNotifications: {},
	ScreenBookingHistory: {}, ScreenBookingDetail: {}, ScreenReviewForm: {},
	ScreenFavorites: {}, ScreenHelp: {}, ScreenAbout: {},
	ScreenAddressList: {}, ScreenAddressForm: {}, ScreenPaymentMethodList: {}, ScreenPaymentMethodForm: {},
	ScreenCleaningHome: {}, ScreenCleaningProviderDetail: {}, ScreenCleaningServiceDetail: {},
	ScreenCleaningBookingForm: {}, ScreenCleaningPayment: {}, ScreenCleaningConfirmation: {}, ScreenCleaningTracking: {},
	ScreenHandymanHome: {}, ScreenHandymanProviderDetail: {}, ScreenHandymanServiceDetail: {},
	ScreenHandymanBookingForm: {}, ScreenHandymanPayment: {}, ScreenHandymanConfirmation: {}, ScreenHandymanTracking: {},
	ScreenBeautyHome: {}, ScreenBeautyProviderDetail: {}, ScreenBeautyServiceDetail: {},
	ScreenBeautyBookingForm: {}, ScreenBeautyPayment: {}, ScreenBeautyConfirmation: {}, ScreenBeautyTracking: {},
	ScreenBeautyShop: {}, ScreenBeautyProductDetail: {}, ScreenBeautyCart: {},
	ScreenBeautyCheckout: {}, ScreenBeautyOrderConfirmation: {}, ScreenBeautyOrderTracking: {},
	ScreenFoodHome: {}, ScreenRestaurantDetail: {}, ScreenFoodItemDetail: {}, ScreenFoodCart: {},
	ScreenFoodCheckout: {}, ScreenFoodOrderConfirmation: {}, ScreenFoodOrderTracking: {},
	ScreenGroceryHome: {}, ScreenGroceryStoreDetail: {}, ScreenGroceryItemDetail: {}, ScreenGroceryCart: {},
	ScreenGroceryCheckout: {}, ScreenGroceryOrderConfirmation: {}, ScreenGroceryOrderTracking: {},
	ScreenRentalHome: {}, ScreenPropertyDetail: {}, ScreenRentalDates: {}, ScreenRentalBookingForm: {},
	ScreenRentalPayment: {}, ScreenRentalConfirmation: {}, ScreenRentalTracking: {},
	ScreenCareHome: {}, ScreenRideProviders: {}, ScreenRideProviderDetail: {}, ScreenRideBookingForm: {},
	ScreenRidePayment: {}, ScreenRideConfirmation: {}, ScreenRideTracking: {},
	ScreenCompanionList: {}, ScreenCompanionDetail: {}, ScreenCompanionBookingForm: {},
	ScreenCompanionPayment: {}, ScreenCompanionConfirmation: {}, ScreenCompanionTracking: {},
	ScreenCartReplaceWarning: {},
}

// Valid reports whether s is a member of the closed screen enumeration.
func (s Screen) Valid() bool {
	_, ok := allScreens[s]
	return ok
}

// ScreenCount returns the size of the screen enumeration.
func ScreenCount() int { return len(allScreens) }
