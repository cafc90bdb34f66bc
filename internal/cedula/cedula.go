// Package cedula generates and validates Ecuadorian identity numbers:
// the 10-digit cédula of a natural person and the 13-digit RUC tax number
// of a natural person or a company.
//
// Cédula layout: two region digits (01-24), a type digit (0-5 for natural
// persons), six body digits and a mod-10 check digit. A natural-person RUC
// is a valid cédula followed by the establishment suffix "001". A company
// RUC carries type digit 9 and a mod-11 check digit before the suffix.
package cedula

import (
	"errors"
	"fmt"

	"github.com/zarlcorp/zecid/internal/rng"
)

const (
	// CedulaLen is the length of a cédula.
	CedulaLen = 10
	// RUCLen is the length of a RUC.
	RUCLen = 13
	// EstablishmentSuffix marks the first registered establishment.
	EstablishmentSuffix = "001"

	minRegion = 1
	maxRegion = 24

	// natural persons use type digits 0..maxNaturalType
	maxNaturalType = 5
	companyType    = 9

	bodyLen = 6
)

var (
	// ErrInvalidRegion is returned when a region code is outside 01-24.
	ErrInvalidRegion = errors.New("invalid region code")
	// ErrInvalidCedula is returned when a cédula fails validation.
	ErrInvalidCedula = errors.New("invalid cedula")
)

// mod-10 coefficients for the nine leading cédula digits.
var cedulaCoefficients = [9]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// mod-11 coefficients for the nine leading company RUC digits.
var companyCoefficients = [9]int{4, 3, 2, 7, 6, 5, 4, 3, 2}

// Kind classifies an identity number.
type Kind string

const (
	KindInvalid    Kind = "invalid"
	KindCedula     Kind = "cedula"
	KindRUC        Kind = "ruc"
	KindCompanyRUC Kind = "company_ruc"
)

// Engine generates identity numbers from a random source.
type Engine struct {
	src rng.Source
}

// New creates an engine drawing from src.
func New(src rng.Source) *Engine {
	return &Engine{src: src}
}

// Cedula generates a valid natural-person cédula for region. An empty
// region draws one uniformly from 01-24.
func (e *Engine) Cedula(region string) (string, error) {
	region, err := e.region(region)
	if err != nil {
		return "", fmt.Errorf("generate cedula: %w", err)
	}

	lead := region + string(byte('0'+e.src.Intn(maxNaturalType+1))) + rng.Digits(e.src, bodyLen)
	return lead + string(byte('0'+cedulaCheckDigit(lead))), nil
}

// CompanyRUC generates a valid company RUC for region. An empty region
// draws one uniformly from 01-24.
func (e *Engine) CompanyRUC(region string) (string, error) {
	region, err := e.region(region)
	if err != nil {
		return "", fmt.Errorf("generate company ruc: %w", err)
	}

	lead := region + string(byte('0'+companyType)) + rng.Digits(e.src, bodyLen)
	return lead + string(byte('0'+companyCheckDigit(lead))) + EstablishmentSuffix, nil
}

func (e *Engine) region(code string) (string, error) {
	if code == "" {
		return fmt.Sprintf("%02d", rng.Between(e.src, minRegion, maxRegion)), nil
	}
	if !ValidRegion(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRegion, code)
	}
	return code, nil
}

// RUCFromCedula derives a natural-person RUC by appending the
// establishment suffix to a valid cédula.
func RUCFromCedula(c string) (string, error) {
	if !Valid(c) {
		return "", fmt.Errorf("derive ruc: %w: %q", ErrInvalidCedula, c)
	}
	return c + EstablishmentSuffix, nil
}

// Valid reports whether s is a well-formed natural-person cédula.
func Valid(s string) bool {
	if len(s) != CedulaLen || !allDigits(s) {
		return false
	}
	if !ValidRegion(s[:2]) {
		return false
	}
	if int(s[2]-'0') > maxNaturalType {
		return false
	}
	return int(s[9]-'0') == cedulaCheckDigit(s[:9])
}

// ValidRUC reports whether s is a valid natural-person or company RUC.
func ValidRUC(s string) bool {
	return validPersonRUC(s) || ValidCompanyRUC(s)
}

// ValidCompanyRUC reports whether s is a valid company RUC.
func ValidCompanyRUC(s string) bool {
	if len(s) != RUCLen || !allDigits(s) {
		return false
	}
	if s[CedulaLen:] != EstablishmentSuffix {
		return false
	}
	if !ValidRegion(s[:2]) || int(s[2]-'0') != companyType {
		return false
	}
	return int(s[9]-'0') == companyCheckDigit(s[:9])
}

// Classify reports which kind of identity number s is.
func Classify(s string) Kind {
	switch {
	case Valid(s):
		return KindCedula
	case validPersonRUC(s):
		return KindRUC
	case ValidCompanyRUC(s):
		return KindCompanyRUC
	}
	return KindInvalid
}

// ValidRegion reports whether code is a two-digit region code in 01-24.
func ValidRegion(code string) bool {
	if len(code) != 2 || !allDigits(code) {
		return false
	}
	n := int(code[0]-'0')*10 + int(code[1]-'0')
	return n >= minRegion && n <= maxRegion
}

// Regions returns every valid region code in ascending order.
func Regions() []string {
	codes := make([]string, 0, maxRegion-minRegion+1)
	for n := minRegion; n <= maxRegion; n++ {
		codes = append(codes, fmt.Sprintf("%02d", n))
	}
	return codes
}

func validPersonRUC(s string) bool {
	return len(s) == RUCLen && s[CedulaLen:] == EstablishmentSuffix && Valid(s[:CedulaLen])
}

// cedulaCheckDigit computes the mod-10 check digit over nine digits.
// Products of 10 or more fold to the sum of their digits.
func cedulaCheckDigit(lead string) int {
	sum := 0
	for i, c := range cedulaCoefficients {
		p := int(lead[i]-'0') * c
		if p >= 10 {
			p -= 9
		}
		sum += p
	}
	if r := sum % 10; r != 0 {
		return 10 - r
	}
	return 0
}

// companyCheckDigit computes the mod-11 check digit over nine digits.
func companyCheckDigit(lead string) int {
	sum := 0
	for i, c := range companyCoefficients {
		sum += int(lead[i]-'0') * c
	}
	switch d := 11 - sum%11; d {
	case 10:
		return 0
	case 11:
		return 1
	default:
		return d
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
