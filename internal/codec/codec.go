package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

var jsonNull = []byte("null")

// Encode serializes records, in order, to an indented JSON array. Audit
// timestamps are not part of the document.
func Encode(records []*types.Record) ([]byte, error) {
	elems := make([]json.RawMessage, 0, len(records))
	for i, r := range records {
		b, err := EncodeRecord(r)
		if err != nil {
			return nil, fmt.Errorf("encoding record %d: %w", i, err)
		}
		elems = append(elems, b)
	}
	return json.MarshalIndent(elems, "", "  ")
}

// EncodeRecord serializes a single record to a JSON object holding its
// variant fields, its phone number and the kind discriminator.
func EncodeRecord(r *types.Record) ([]byte, error) {
	if r == nil {
		return nil, types.ErrNilRecord
	}
	if p, ok := r.Person(); ok {
		return json.Marshal(newPersonJSON(r, p))
	}
	if o, ok := r.Organization(); ok {
		return json.Marshal(newOrganizationJSON(r, o))
	}
	return nil, fmt.Errorf("%w %q", types.ErrUnknownKind, r.Kind())
}

// Decode parses a catalog document. Empty input decodes to an empty slice and
// null elements are skipped. Any other bad element fails the whole document
// with an error wrapping types.ErrMalformedDocument.
//
// Records are rebuilt through the regular constructors, so every field passes
// its validator again and report receives the resulting diagnostics.
func Decode(data []byte, report types.DiagnosticFunc) ([]*types.Record, error) {
	records := []*types.Record{}
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedDocument, err)
	}

	for i, elem := range elems {
		if bytes.Equal(bytes.TrimSpace(elem), jsonNull) {
			continue
		}
		r, err := DecodeRecord(elem, report)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// DecodeRecord parses a single element: the discriminator first, then the
// fields of the matching kind.
func DecodeRecord(data []byte, report types.DiagnosticFunc) (*types.Record, error) {
	var env envelopeJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedDocument, err)
	}
	if env.Type == nil {
		return nil, missingKey(KeyType)
	}

	kind := types.Kind(*env.Type)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %w %q", types.ErrMalformedDocument, types.ErrUnknownKind, kind)
	}
	if kind == types.KindPerson {
		return decodePerson(data, report)
	}
	return decodeOrganization(data, report)
}

func decodePerson(data []byte, report types.DiagnosticFunc) (*types.Record, error) {
	var pj personJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedDocument, err)
	}
	err := requireKeys(
		keyed{"name", pj.Name},
		keyed{"surname", pj.Surname},
		keyed{"birthDate", pj.BirthDate},
		keyed{"gender", pj.Gender},
		keyed{KeyPhoneNumber, pj.PhoneNumber},
	)
	if err != nil {
		return nil, err
	}
	return types.NewPerson(types.PersonFields{
		Name:        *pj.Name,
		Surname:     *pj.Surname,
		BirthDate:   *pj.BirthDate,
		Gender:      *pj.Gender,
		PhoneNumber: *pj.PhoneNumber,
	}, report), nil
}

func decodeOrganization(data []byte, report types.DiagnosticFunc) (*types.Record, error) {
	var oj organizationJSON
	if err := json.Unmarshal(data, &oj); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedDocument, err)
	}
	err := requireKeys(
		keyed{"organization name", oj.Name},
		keyed{"address", oj.Address},
		keyed{KeyPhoneNumber, oj.PhoneNumber},
	)
	if err != nil {
		return nil, err
	}
	return types.NewOrganization(types.OrganizationFields{
		Name:        *oj.Name,
		Address:     *oj.Address,
		PhoneNumber: *oj.PhoneNumber,
	}, report), nil
}

type keyed struct {
	key   string
	value *string
}

// requireKeys fails on the first key that is absent or null.
func requireKeys(fields ...keyed) error {
	for _, f := range fields {
		if f.value == nil {
			return missingKey(f.key)
		}
	}
	return nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: %w %q", types.ErrMalformedDocument, types.ErrMissingField, key)
}
