package models

type Customer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Zipcode  string `json:"zipcode"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
	Comment  string `json:"comment"`
}

// CreateCustomerRequest is used when creating a new customer
type CreateCustomerRequest struct {
	Name     string `json:"name"`
	Zipcode  string `json:"zipcode"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
	Comment  string `json:"comment"`
}

// UpdateCustomerRequest carries the editable fields of a customer
type UpdateCustomerRequest struct {
	Name     string `json:"name"`
	Zipcode  string `json:"zipcode"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
	Comment  string `json:"comment"`
}
