package identity

import (
	"errors"
	"fmt"
)

const (
	// MaxQuantity bounds the records produced by one call.
	MaxQuantity = 1000

	DefaultMinAge = 18
	DefaultMaxAge = 65

	maxAge = 120
)

// ErrInvalidAgeRange is returned for negative or inverted age ranges.
var ErrInvalidAgeRange = errors.New("invalid age range")

// AgeRange bounds the age used to derive a birth year, inclusive.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Options configures a generation call. The zero value asks for one
// record from a random province with ages 18-65.
type Options struct {
	// Quantity is clamped to [1, MaxQuantity].
	Quantity int `json:"quantity"`
	// Province restricts sampling to one province, by code or name.
	Province string `json:"province,omitempty"`
	// IncludeRUC adds a RUC derived from each person's cédula.
	IncludeRUC bool `json:"include_ruc"`
	// IncludeCompany adds an independently sampled company name.
	IncludeCompany bool `json:"include_company"`
	// AgeRange defaults to 18-65 when zero.
	AgeRange AgeRange `json:"age_range"`
}

// Normalize clamps the quantity and fills the default age range.
func (o Options) Normalize() (Options, error) {
	o.Quantity = max(1, min(o.Quantity, MaxQuantity))

	if o.AgeRange == (AgeRange{}) {
		o.AgeRange = AgeRange{Min: DefaultMinAge, Max: DefaultMaxAge}
	}
	r := o.AgeRange
	if r.Min < 0 || r.Max > maxAge || r.Min > r.Max {
		return Options{}, fmt.Errorf("%w: %d-%d", ErrInvalidAgeRange, r.Min, r.Max)
	}

	return o, nil
}
