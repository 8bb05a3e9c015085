package services

// EqualShare splits a ledger amount evenly across the devices attached to
// it. An entry with no attached devices contributes nothing to any device.
func EqualShare(amount float64, deviceCount int) float64 {
	if deviceCount <= 0 {
		return 0
	}
	return amount / float64(deviceCount)
}

// RentalShare computes one device's slice of a rental-sourced revenue entry,
// weighted by its listed per-day price against the rental's nominal daily
// total. Any discount applied at booking is redistributed in the same
// proportions, so the shares still sum to the entry amount.
//
// A nominal total of zero means the stored data violates the pricing
// invariant; the nominal per-device amount is returned unadjusted and the
// caller is expected to log a data-integrity warning.
func RentalShare(entryAmount float64, rentalDays int, rentPrice, nominalDailyTotal float64) float64 {
	if nominalDailyTotal <= 0 {
		return rentPrice * float64(rentalDays)
	}
	actualDailyTotal := entryAmount / float64(rentalDays)
	return actualDailyTotal * (rentPrice / nominalDailyTotal) * float64(rentalDays)
}
