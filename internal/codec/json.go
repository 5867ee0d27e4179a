// Package codec converts contact records to and from the catalog document:
// a single JSON array in which every element carries a "type" discriminator.
package codec

import "github.com/mesh-intelligence/contacts/pkg/types"

// Key names of the catalog document.
const (
	KeyType        = "type"
	KeyPhoneNumber = "phone-number"
)

// envelopeJSON is read first to find the element's kind.
type envelopeJSON struct {
	Type *string `json:"type"`
}

// personJSON represents a person element. Pointer fields distinguish a
// missing key from an empty value.
type personJSON struct {
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	BirthDate   *string `json:"birthDate"`
	Gender      *string `json:"gender"`
	PhoneNumber *string `json:"phone-number"`
	Type        string  `json:"type"`
}

// organizationJSON represents an organization element.
type organizationJSON struct {
	Name        *string `json:"organization name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone-number"`
	Type        string  `json:"type"`
}

func newPersonJSON(r *types.Record, p *types.Person) personJSON {
	return personJSON{
		Name:        ptr(p.Name()),
		Surname:     ptr(p.Surname()),
		BirthDate:   ptr(p.BirthDate()),
		Gender:      ptr(p.Gender()),
		PhoneNumber: ptr(r.PhoneNumber()),
		Type:        string(types.KindPerson),
	}
}

func newOrganizationJSON(r *types.Record, o *types.Organization) organizationJSON {
	return organizationJSON{
		Name:        ptr(o.Name()),
		Address:     ptr(o.Address()),
		PhoneNumber: ptr(r.PhoneNumber()),
		Type:        string(types.KindOrganization),
	}
}

func ptr(s string) *string { return &s }
