package customer

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

const (
	DefaultCatalogSize           = 1001
	DefaultFirstReference  int32 = 1000000
	referenceLastName            = "VSH"
	referenceEntityCode          = "ABC"
	referenceFirstNamePrefix     = "ABC/R"
)

// Customer is a legacy-shaped record. The legal entity code fields are
// independent of each other.
type Customer struct {
	ID               int32  `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	LegalEntityCode  string `json:"legalEntityCode"`
	LegalEntityCode1 string `json:"legalEntityCode1"`
	LegalEntityCode2 string `json:"legalEntityCode2"`
	LegalEntityCode3 string `json:"legalEntityCode3"`
	LegalEntityCode4 string `json:"legalEntityCode4"`
	LegalEntityCode5 string `json:"legalEntityCode5"`
	LegalEntityCode6 string `json:"legalEntityCode6"`
	LegalEntityCode7 string `json:"legalEntityCode7"`
	LegalEntityCode8 string `json:"legalEntityCode8"`
	LegalEntityCode9 string `json:"legalEntityCode9"`
	LegalEntityCodeA string `json:"legalEntityCodeA"`
	LegalEntityCodeB string `json:"legalEntityCodeB"`
	LegalEntityCodeC string `json:"legalEntityCodeC"`
}

// TextField binds a text attribute name to its location in a Customer.
type TextField struct {
	Name string
	Ref  func(c *Customer) *string
}

var textFields = []TextField{
	{"firstName", func(c *Customer) *string { return &c.FirstName }},
	{"lastName", func(c *Customer) *string { return &c.LastName }},
	{"legalEntityCode", func(c *Customer) *string { return &c.LegalEntityCode }},
	{"legalEntityCode1", func(c *Customer) *string { return &c.LegalEntityCode1 }},
	{"legalEntityCode2", func(c *Customer) *string { return &c.LegalEntityCode2 }},
	{"legalEntityCode3", func(c *Customer) *string { return &c.LegalEntityCode3 }},
	{"legalEntityCode4", func(c *Customer) *string { return &c.LegalEntityCode4 }},
	{"legalEntityCode5", func(c *Customer) *string { return &c.LegalEntityCode5 }},
	{"legalEntityCode6", func(c *Customer) *string { return &c.LegalEntityCode6 }},
	{"legalEntityCode7", func(c *Customer) *string { return &c.LegalEntityCode7 }},
	{"legalEntityCode8", func(c *Customer) *string { return &c.LegalEntityCode8 }},
	{"legalEntityCode9", func(c *Customer) *string { return &c.LegalEntityCode9 }},
	{"legalEntityCodeA", func(c *Customer) *string { return &c.LegalEntityCodeA }},
	{"legalEntityCodeB", func(c *Customer) *string { return &c.LegalEntityCodeB }},
	{"legalEntityCodeC", func(c *Customer) *string { return &c.LegalEntityCodeC }},
}

// TextFields lists every text attribute of Customer in schema order.
func TextFields() []TextField {
	return slices.Clone(textFields)
}

// NewReferenceCustomer builds the seeded record for a reference value.
func NewReferenceCustomer(ref int32) Customer {
	c := Customer{ID: ref}
	for _, f := range textFields {
		*f.Ref(&c) = referenceEntityCode
	}
	c.FirstName = referenceFirstNamePrefix + strconv.FormatInt(int64(ref), 10)
	c.LastName = referenceLastName
	return c
}

// SeedReferenceCatalog returns size records with consecutive ids starting at
// firstReference. A non-positive size yields an empty catalog. It panics
// when the last id would not fit in an int32.
func SeedReferenceCatalog(size int, firstReference int32) []Customer {
	if size <= 0 {
		return []Customer{}
	}
	if int64(firstReference)+int64(size)-1 > math.MaxInt32 {
		panic(fmt.Sprintf("reference catalog ids overflow int32: first %d, size %d", firstReference, size))
	}
	customers := make([]Customer, size)
	for i := range customers {
		customers[i] = NewReferenceCustomer(firstReference + int32(i))
	}
	return customers
}

// StructuredError is a domain error carried as data inside a response body.
type StructuredError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Result holds exactly one of Customer or Error.
type Result struct {
	Customer *Customer
	Error    *StructuredError
}

func Found(c Customer) Result {
	return Result{Customer: &c}
}

func Failed(message, code string) Result {
	return Result{Error: &StructuredError{Message: message, Code: code}}
}

func (r Result) IsError() bool {
	return r.Error != nil
}

// List wraps the full catalog. It has no error variant.
type List struct {
	Customers []Customer
}
