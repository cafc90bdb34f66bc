package identity

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/zarlcorp/zecid/internal/cedula"
	"github.com/zarlcorp/zecid/internal/refdata"
	"github.com/zarlcorp/zecid/internal/rng"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	countryCode = "+593"

	// share of generated phone numbers that are mobile
	mobileShare = 0.7
	// share of addresses that carry an apartment number
	apartmentShare = 0.3

	defaultCompanyType = "Sociedad Anónima"
)

// legalForms names the company type for each built-in legal suffix.
var legalForms = map[string]string{
	"S.A.":       "Sociedad Anónima",
	"Cía. Ltda.": "Compañía Limitada",
	"S.A.S.":     "Sociedad por Acciones Simplificada",
	"C.A.":       "Compañía Anónima",
	"Corp.":      "Corporación",
}

// Generator produces synthetic records. It holds no mutable state, so a
// single Generator may serve concurrent callers when its Source does.
type Generator struct {
	src     rng.Source
	catalog *refdata.Catalog
	ids     *cedula.Engine
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. The default is crypto/rand.
func WithSource(src rng.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithCatalog sets the reference tables. The default is refdata.Default.
func WithCatalog(c *refdata.Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithClock sets the clock birth years are derived from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:     rng.Crypto(),
		catalog: refdata.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	g.ids = cedula.New(g.src)
	return g
}

// Catalog returns the generator's reference tables.
func (g *Generator) Catalog() *refdata.Catalog {
	return g.catalog
}

// People generates a batch of persons. An unknown province or age range
// fails the whole call before anything is generated.
func (g *Generator) People(opts Options) ([]Person, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, fmt.Errorf("generate people: %w", err)
	}

	fixed, err := g.resolve(opts.Province)
	if err != nil {
		return nil, fmt.Errorf("generate people: %w", err)
	}

	people := make([]Person, 0, opts.Quantity)
	for range opts.Quantity {
		p, err := g.person(opts, g.province(fixed))
		if err != nil {
			return nil, fmt.Errorf("generate people: %w", err)
		}
		people = append(people, p)
	}

	return people, nil
}

// Companies generates a batch of companies. Only Quantity and Province
// apply; the person-specific options are ignored.
func (g *Generator) Companies(opts Options) ([]Company, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, fmt.Errorf("generate companies: %w", err)
	}

	fixed, err := g.resolve(opts.Province)
	if err != nil {
		return nil, fmt.Errorf("generate companies: %w", err)
	}

	companies := make([]Company, 0, opts.Quantity)
	for range opts.Quantity {
		c, err := g.company(g.province(fixed))
		if err != nil {
			return nil, fmt.Errorf("generate companies: %w", err)
		}
		companies = append(companies, c)
	}

	return companies, nil
}

func (g *Generator) person(opts Options, prov refdata.Province) (Person, error) {
	ced, err := g.ids.Cedula(prov.Code)
	if err != nil {
		return Person{}, err
	}

	gender := Female
	if rng.Chance(g.src, 0.5) {
		gender = Male
	}

	first := g.givenName(gender)
	last := g.surnames()

	p := Person{
		Cedula:     ced,
		FirstName:  first,
		LastName:   last,
		Email:      g.Email(first, last),
		Phone:      g.Phone(prov.Code),
		Address:    g.Address(),
		Province:   prov.Name,
		Canton:     rng.Pick(g.src, prov.Cantons),
		BirthDate:  g.BirthDate(opts.AgeRange),
		Gender:     gender,
		Profession: rng.Pick(g.src, g.catalog.Professions),
	}

	if opts.IncludeRUC {
		// the cédula is self-generated, so this only fails on a bug
		if p.RUC, err = cedula.RUCFromCedula(ced); err != nil {
			return Person{}, err
		}
	}

	if opts.IncludeCompany {
		p.Company = g.CompanyName()
	}

	return p, nil
}

func (g *Generator) company(prov refdata.Province) (Company, error) {
	ruc, err := g.ids.CompanyRUC(prov.Code)
	if err != nil {
		return Company{}, err
	}

	sector, base, suffix := g.companyParts()

	kind, ok := legalForms[suffix]
	if !ok {
		kind = defaultCompanyType
	}

	return Company{
		Name:     sector + " " + base + " " + suffix,
		RUC:      ruc,
		Sector:   sector,
		Type:     kind,
		Email:    g.companyEmail(base),
		Phone:    g.Phone(prov.Code),
		Address:  g.Address(),
		Province: prov.Name,
		Canton:   rng.Pick(g.src, prov.Cantons),
	}, nil
}

// resolve looks up an explicit province; nil means draw one per record.
func (g *Generator) resolve(query string) (*refdata.Province, error) {
	if query == "" {
		return nil, nil
	}
	p, err := g.catalog.Province(query)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *Generator) province(fixed *refdata.Province) refdata.Province {
	if fixed != nil {
		return *fixed
	}
	return rng.Pick(g.src, g.catalog.Provinces)
}

func (g *Generator) givenName(gender Gender) string {
	if gender == Male {
		return rng.Pick(g.src, g.catalog.MaleNames)
	}
	return rng.Pick(g.src, g.catalog.FemaleNames)
}

// surnames draws a paternal and maternal surname independently; they may repeat.
func (g *Generator) surnames() string {
	return rng.Pick(g.src, g.catalog.Surnames) + " " + rng.Pick(g.src, g.catalog.Surnames)
}

// Email builds a lowercase address from the given name and the first
// surname using one of five patterns at a random domain.
func (g *Generator) Email(first, last string) string {
	f := slug(first)
	l := slug(firstWord(last))

	var local string
	switch g.src.Intn(5) {
	case 0:
		local = f + "." + l
	case 1:
		local = f + l
	case 2:
		local = f + "_" + l
	case 3:
		local = fmt.Sprintf("%s%d", f, g.src.Intn(999))
	default:
		local = l + f
	}

	return strings.ToLower(local + "@" + rng.Pick(g.src, g.catalog.EmailDomains))
}

// companyEmail uses the base name, not the leading sector word, so
// companies in one sector get distinct hosts.
func (g *Generator) companyEmail(base string) string {
	s := slug(base)
	if s == "" {
		s = "empresa"
	}
	return "info@" + s + "." + rng.Pick(g.src, g.catalog.CompanyTLDs)
}

// Phone generates a number in +593 <prefix> XXX XXXX form. Landlines use
// the province's area code; provinces without one fall back to mobile.
func (g *Generator) Phone(provinceCode string) string {
	var prefix string
	if !rng.Chance(g.src, mobileShare) {
		if landline := g.catalog.LandlinePrefixes(provinceCode); len(landline) > 0 {
			prefix = rng.Pick(g.src, landline)
		}
	}
	if prefix == "" {
		prefix = rng.Pick(g.src, g.catalog.MobilePrefixes)
	}

	n := rng.Digits(g.src, 7)
	return fmt.Sprintf("%s %s %s %s", countryCode, prefix, n[:3], n[3:])
}

// Address generates a street address like "Av. Amazonas N1234 Apt. 5".
func (g *Generator) Address() string {
	addr := fmt.Sprintf("%s N%d", rng.Pick(g.src, g.catalog.StreetNames), rng.Between(g.src, 1, 9999))
	if rng.Chance(g.src, apartmentShare) {
		addr += fmt.Sprintf(" Apt. %d", rng.Between(g.src, 1, 20))
	}
	return addr
}

// BirthDate returns a YYYY-MM-DD date whose year is the current year minus
// an age drawn from r. Days stop at 28 so every month is valid.
func (g *Generator) BirthDate(r AgeRange) string {
	age := rng.Between(g.src, r.Min, r.Max)
	year := g.now().Year() - age
	month := rng.Between(g.src, 1, 12)
	day := rng.Between(g.src, 1, 28)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// CompanyName generates "<sector> <name> <legal suffix>".
func (g *Generator) CompanyName() string {
	sector, base, suffix := g.companyParts()
	return sector + " " + base + " " + suffix
}

func (g *Generator) companyParts() (sector, base, suffix string) {
	return rng.Pick(g.src, g.catalog.Sectors),
		rng.Pick(g.src, g.catalog.CompanyNames),
		rng.Pick(g.src, g.catalog.CompanySuffixes)
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// slug folds accents and drops everything but ASCII letters and digits.
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
