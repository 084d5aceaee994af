package dto

import "customer-catalog/internal/domain/customer"

// CustomerResult documents the JSON shape of GET /customers/{id}. Exactly
// one of Result and Error is present.
type CustomerResult struct {
	Result *customer.Customer        `json:"result,omitempty"`
	Error  *customer.StructuredError `json:"error,omitempty"`
}

// CustomerList documents the JSON shape of GET /customers.
type CustomerList struct {
	Customer []customer.Customer `json:"customer"`
}
