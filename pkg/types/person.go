package types

// Person is the payload of a KindPerson record.
type Person struct {
	name      string
	surname   string
	birthDate string // DateLayout or SentinelNoData.
	gender    string // GenderMale, GenderFemale or SentinelNoData.
}

// PersonFields holds the raw input for NewPerson.
type PersonFields struct {
	Name        string
	Surname     string
	BirthDate   string
	Gender      string
	PhoneNumber string
}

// NewPerson creates a person record, running every field through its
// validator. Diagnostics for replaced input go to report, which may be nil
// and is kept for later SetField calls.
func NewPerson(in PersonFields, report DiagnosticFunc) *Record {
	r := newRecord(KindPerson, report)
	r.person = &Person{}
	raw := map[string]string{
		FieldName:    in.Name,
		FieldSurname: in.Surname,
		FieldBirth:   in.BirthDate,
		FieldGender:  in.Gender,
	}
	for _, f := range personFields {
		r.assign(f, raw[f.name])
	}
	r.assign(baseFields[0], in.PhoneNumber)
	return r
}

func (p *Person) Name() string      { return p.name }
func (p *Person) Surname() string   { return p.surname }
func (p *Person) BirthDate() string { return p.birthDate }
func (p *Person) Gender() string    { return p.gender }
