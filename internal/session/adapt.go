package session

// AdaptBooking rebuilds the live draft a tracking screen expects from a
// finalized history entry. It is pure and total: every category produces a
// renderable draft, synthesizing plausible defaults where the record carries
// no structured data. Each synthesized field is listed in the report.
//
// The caller applies the result with a SetDraft patch before navigating to
// the tracking screen; the tracking screens are generic over category and
// read whichever draft CurrentBookingType points to.
func AdaptBooking(b Booking, fallbackPayment *PaymentCard) (Draft, AdaptReport) {
	var rep AdaptReport

	d := Draft{
		Category: b.Kind.DraftCategory(),
		Vendor:   b.Vendor,
		Service:  b.Service,
		Address:  b.Address,
		Payment:  b.Payment,
		Schedule: b.Schedule,
		Total:    b.Total,
	}
	if d.Category == CategoryNone {
		// Food and grocery orders have no draft flow of their own; the
		// beauty draft chassis tracks them like a product order.
		d.Category = CategoryBeauty
		rep.note("category", "order kind tracked via product flow")
	}

	if d.Vendor.Rating == 0 {
		d.Vendor.Rating = defaultRating
		rep.note("vendor.rating", "defaulted")
	}
	if d.Service.DurationMin == 0 {
		d.Service.DurationMin = defaultDurationMin
		rep.note("service.duration", "defaulted")
	}
	if d.Payment.ID == "" {
		if fallbackPayment != nil {
			d.Payment = *fallbackPayment
			rep.note("payment", "defaulted to saved default card")
		} else {
			d.Payment = PaymentCard{Brand: "Card", Last4: "0000", Label: "Payment on file"}
			rep.note("payment", "synthesized placeholder")
		}
	}
	if d.Address.Label == "" && d.Address.Street == "" {
		d.Address = Address{Label: "Saved address"}
		rep.note("address", "synthesized placeholder")
	}

	switch d.Category {
	case CategoryCleaning:
		d.Cleaning = &CleaningDetails{Bedrooms: 2, Bathrooms: 1}
		rep.note("cleaning", "details not retained in history, defaulted")
	case CategoryHandyman:
		d.Handyman = &HandymanDetails{JobType: d.Service.Name}
		rep.note("handyman", "details not retained in history, defaulted")
	case CategoryBeauty:
		beauty := &BeautyDetails{}
		for _, it := range b.Items {
			beauty.ProductIDs = append(beauty.ProductIDs, it.ItemID)
		}
		d.Beauty = beauty
		if len(b.Items) == 0 {
			rep.note("beauty", "details not retained in history, defaulted")
		}
	case CategoryRental:
		d.Rental = &RentalDetails{
			Guests:   2,
			CheckIn:  b.Schedule.Date,
			CheckOut: b.Schedule.EndDate,
		}
		rep.note("rental", "guest count not retained in history, defaulted")
	case CategoryCareRide:
		d.Ride = &RideDetails{Pickup: b.Address.Display(), Dropoff: ""}
		rep.note("ride", "route not retained in history, pickup defaulted to address")
	case CategoryCareCompanion:
		d.Companion = &CompanionDetails{Hours: 2}
		rep.note("companion", "hours not retained in history, defaulted")
	}

	return d, rep
}
