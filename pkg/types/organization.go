package types

// Organization is the payload of a KindOrganization record.
type Organization struct {
	name    string
	address string
}

// OrganizationFields holds the raw input for NewOrganization.
type OrganizationFields struct {
	Name        string
	Address     string
	PhoneNumber string
}

// NewOrganization creates an organization record. See NewPerson for how
// input is validated and reported.
func NewOrganization(in OrganizationFields, report DiagnosticFunc) *Record {
	r := newRecord(KindOrganization, report)
	r.organization = &Organization{}
	raw := map[string]string{
		FieldName:    in.Name,
		FieldAddress: in.Address,
	}
	for _, f := range organizationFields {
		r.assign(f, raw[f.name])
	}
	r.assign(baseFields[0], in.PhoneNumber)
	return r
}

func (o *Organization) Name() string    { return o.name }
func (o *Organization) Address() string { return o.address }
