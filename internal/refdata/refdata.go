// Package refdata holds the read-only reference tables the record
// generators sample from: provinces and cantons, names, streets,
// professions, company names and contact prefixes.
package refdata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zarlcorp/zecid/internal/cedula"
	"gopkg.in/yaml.v3"
)

// ErrUnknownProvince is returned when a province query matches nothing.
var ErrUnknownProvince = errors.New("unknown province")

// Province is an administrative region with its cantons.
type Province struct {
	Code    string   `json:"code" yaml:"code"`
	Name    string   `json:"name" yaml:"name"`
	Cantons []string `json:"cantons" yaml:"cantons"`
}

// Catalog is the full set of reference tables. A Catalog is never mutated
// after construction and may be shared between goroutines.
type Catalog struct {
	Provinces       []Province          `yaml:"provinces"`
	MaleNames       []string            `yaml:"male_names"`
	FemaleNames     []string            `yaml:"female_names"`
	Surnames        []string            `yaml:"surnames"`
	Professions     []string            `yaml:"professions"`
	StreetNames     []string            `yaml:"street_names"`
	CompanyNames    []string            `yaml:"company_names"`
	CompanySuffixes []string            `yaml:"company_suffixes"`
	Sectors         []string            `yaml:"sectors"`
	EmailDomains    []string            `yaml:"email_domains"`
	CompanyTLDs     []string            `yaml:"company_tlds"`
	MobilePrefixes  []string            `yaml:"mobile_prefixes"`
	Landline        map[string][]string `yaml:"landline_prefixes"`
}

// Default returns the built-in Ecuadorian catalog.
func Default() *Catalog {
	return &Catalog{
		Provinces:       provinces,
		MaleNames:       maleNames,
		FemaleNames:     femaleNames,
		Surnames:        surnames,
		Professions:     professions,
		StreetNames:     streetNames,
		CompanyNames:    companyNames,
		CompanySuffixes: companySuffixes,
		Sectors:         sectors,
		EmailDomains:    emailDomains,
		CompanyTLDs:     companyTLDs,
		MobilePrefixes:  mobilePrefixes,
		Landline:        landlinePrefixes,
	}
}

// Load reads a YAML catalog. Tables absent from the document keep their
// built-in values; unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load catalog: decode: %w", err)
	}

	c.fillDefaults(Default())

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &c, nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Catalog) fillDefaults(d *Catalog) {
	if len(c.Provinces) == 0 {
		c.Provinces = d.Provinces
	}
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&c.MaleNames, d.MaleNames)
	fill(&c.FemaleNames, d.FemaleNames)
	fill(&c.Surnames, d.Surnames)
	fill(&c.Professions, d.Professions)
	fill(&c.StreetNames, d.StreetNames)
	fill(&c.CompanyNames, d.CompanyNames)
	fill(&c.CompanySuffixes, d.CompanySuffixes)
	fill(&c.Sectors, d.Sectors)
	fill(&c.EmailDomains, d.EmailDomains)
	fill(&c.CompanyTLDs, d.CompanyTLDs)
	fill(&c.MobilePrefixes, d.MobilePrefixes)
	// a nil landline map keeps the defaults of the provinces in use; an
	// explicit empty map means mobile numbers only
	if c.Landline == nil {
		c.Landline = make(map[string][]string, len(c.Provinces))
		for _, p := range c.Provinces {
			if prefixes, ok := d.Landline[p.Code]; ok {
				c.Landline[p.Code] = prefixes
			}
		}
	}
}

// Validate checks that every table can be sampled from and that every
// province code is a valid cédula region.
func (c *Catalog) Validate() error {
	if len(c.Provinces) == 0 {
		return errors.New("catalog has no provinces")
	}

	seen := make(map[string]bool, len(c.Provinces))
	for _, p := range c.Provinces {
		if !cedula.ValidRegion(p.Code) {
			return fmt.Errorf("province %q: %w: %q", p.Name, cedula.ErrInvalidRegion, p.Code)
		}
		if seen[p.Code] {
			return fmt.Errorf("province %q: duplicate code %s", p.Name, p.Code)
		}
		seen[p.Code] = true
		if p.Name == "" {
			return fmt.Errorf("province %s has no name", p.Code)
		}
		if len(p.Cantons) == 0 {
			return fmt.Errorf("province %q has no cantons", p.Name)
		}
	}

	tables := []struct {
		name string
		v    []string
	}{
		{"male_names", c.MaleNames},
		{"female_names", c.FemaleNames},
		{"surnames", c.Surnames},
		{"professions", c.Professions},
		{"street_names", c.StreetNames},
		{"company_names", c.CompanyNames},
		{"company_suffixes", c.CompanySuffixes},
		{"sectors", c.Sectors},
		{"email_domains", c.EmailDomains},
		{"company_tlds", c.CompanyTLDs},
		{"mobile_prefixes", c.MobilePrefixes},
	}
	for _, t := range tables {
		if len(t.v) == 0 {
			return fmt.Errorf("catalog table %s is empty", t.name)
		}
	}

	for code := range c.Landline {
		if !seen[code] {
			return fmt.Errorf("landline prefixes for unknown province code %s", code)
		}
	}

	return nil
}

// Province finds a province by exact code or case-insensitive name.
func (c *Catalog) Province(query string) (Province, error) {
	for _, p := range c.Provinces {
		if p.Code == query || strings.EqualFold(p.Name, query) {
			return p, nil
		}
	}
	return Province{}, fmt.Errorf("%w: %q", ErrUnknownProvince, query)
}

// LandlinePrefixes returns the landline prefixes registered for a
// province code, or nil.
func (c *Catalog) LandlinePrefixes(code string) []string {
	return c.Landline[code]
}
