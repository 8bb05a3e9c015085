package models

// DeviceType is a catalog category (bike, e-bike, power tool, ...)
type DeviceType struct {
	ID       int    `json:"id"`
	TypeName string `json:"type_name"`
}

type Device struct {
	ID           int     `json:"id"`
	DeviceName   string  `json:"device_name"`
	DeviceTypeID int     `json:"device_type_id"`
	TypeName     string  `json:"type_name,omitempty"` // joined from device_types
	Serial       string  `json:"serial"`
	Price        float64 `json:"price"`
	RentPrice    float64 `json:"rent_price"` // per rental day
	Available    bool    `json:"available"`
	Picture      string  `json:"picture,omitempty"`
	RentCount    int     `json:"rent_count"`
	Notes        string  `json:"notes,omitempty"`
}

// CreateDeviceRequest is used when adding a device to the catalog
type CreateDeviceRequest struct {
	DeviceName   string  `json:"device_name"`
	DeviceTypeID int     `json:"device_type_id"`
	Serial       string  `json:"serial"`
	Price        float64 `json:"price"`
	RentPrice    float64 `json:"rent_price"`
	Available    bool    `json:"available"`
	Picture      string  `json:"picture"`
	Notes        string  `json:"notes"`
}

// UpdateDeviceRequest carries the editable fields of a device.
// RentCount is deliberately absent: only the booking transaction changes it.
type UpdateDeviceRequest struct {
	DeviceName   string  `json:"device_name"`
	DeviceTypeID int     `json:"device_type_id"`
	Serial       string  `json:"serial"`
	Price        float64 `json:"price"`
	RentPrice    float64 `json:"rent_price"`
	Available    bool    `json:"available"`
	Picture      string  `json:"picture"`
	Notes        string  `json:"notes"`
}
