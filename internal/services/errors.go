package services

import "errors"

// Referential guards: these reject a deletion before any row is touched.
var (
	ErrCustomerHasRentals = errors.New("customer has rentals and cannot be deleted")
	ErrDeviceInUse        = errors.New("device is referenced by rentals, service tickets or ledger entries and cannot be deleted")
	ErrEntrySourced       = errors.New("ledger entry was created by a rental or service ticket and can only be deleted with its source")
)
