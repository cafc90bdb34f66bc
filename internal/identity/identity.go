// Package identity generates synthetic Ecuadorian person and company
// records for test fixtures. Records are flat values: every field is a
// string so they render as table columns or CSV rows unchanged.
package identity

// Gender selects the given-name table a person is drawn from.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Field is one labeled value of a record.
type Field struct {
	Name  string
	Value string
}

// Record is a flat generated record.
type Record interface {
	Fields() []Field
}

// Person is a generated natural person.
type Person struct {
	Cedula     string `json:"cedula"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Province   string `json:"province"`
	Canton     string `json:"canton"`
	BirthDate  string `json:"birth_date"`
	Gender     Gender `json:"gender"`
	Profession string `json:"profession"`
	RUC        string `json:"ruc,omitempty"`
	Company    string `json:"company,omitempty"`
}

// Fields returns the person's fields in display order. Optional fields
// are present only when set.
func (p Person) Fields() []Field {
	f := []Field{
		{"cedula", p.Cedula},
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"email", p.Email},
		{"phone", p.Phone},
		{"address", p.Address},
		{"province", p.Province},
		{"canton", p.Canton},
		{"birth_date", p.BirthDate},
		{"gender", string(p.Gender)},
		{"profession", p.Profession},
	}
	if p.RUC != "" {
		f = append(f, Field{"ruc", p.RUC})
	}
	if p.Company != "" {
		f = append(f, Field{"company", p.Company})
	}
	return f
}

// Company is a generated juridical person.
type Company struct {
	Name     string `json:"name"`
	RUC      string `json:"ruc"`
	Sector   string `json:"sector"`
	Type     string `json:"type"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Province string `json:"province"`
	Canton   string `json:"canton"`
}

// Fields returns the company's fields in display order.
func (c Company) Fields() []Field {
	return []Field{
		{"name", c.Name},
		{"ruc", c.RUC},
		{"sector", c.Sector},
		{"type", c.Type},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
		{"province", c.Province},
		{"canton", c.Canton},
	}
}

// People converts a slice of persons to records.
func People(ps []Person) []Record {
	out := make([]Record, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// Companies converts a slice of companies to records.
func Companies(cs []Company) []Record {
	out := make([]Record, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
