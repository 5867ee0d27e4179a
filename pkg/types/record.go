package types

import (
	"fmt"
	"strings"
	"time"
)

// Record kinds. The kind string is also the discriminator written to the
// catalog document.
const (
	KindPerson       Kind = "person"
	KindOrganization Kind = "company"
)

// Kind identifies the concrete variant held by a Record.
type Kind string

// validKinds is the set of recognized record kinds.
var validKinds = map[Kind]bool{
	KindPerson:       true,
	KindOrganization: true,
}

// Valid reports whether k is a recognized record kind.
func (k Kind) Valid() bool {
	return validKinds[k]
}

// Kinds returns the recognized record kinds in display order.
func Kinds() []Kind {
	return []Kind{KindPerson, KindOrganization}
}

// TimestampLayout is used to render CreatedAt and LastModifiedAt.
const TimestampLayout = "2006-01-02T15:04:05"

// now is the clock used for audit timestamps; tests replace it.
var now = time.Now

// Record is one catalog entry. It carries the fields shared by every kind
// (phone number and audit timestamps) and exactly one variant payload.
// Fields are only written through the constructors and SetField, so a stored
// value has always passed its validator.
type Record struct {
	kind           Kind
	phoneNumber    string
	createdAt      time.Time // Truncated to whole seconds.
	lastModifiedAt time.Time // Never before createdAt.

	person       *Person
	organization *Organization

	report DiagnosticFunc
}

func newRecord(kind Kind, report DiagnosticFunc) *Record {
	t := now().Truncate(time.Second)
	return &Record{
		kind:           kind,
		createdAt:      t,
		lastModifiedAt: t,
		report:         report,
	}
}

// Kind returns the record's variant.
func (r *Record) Kind() Kind { return r.kind }

// PhoneNumber returns the stored phone number or SentinelNoNumber.
func (r *Record) PhoneNumber() string { return r.phoneNumber }

// CreatedAt returns the construction time.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// LastModifiedAt returns the time of the last field write.
func (r *Record) LastModifiedAt() time.Time { return r.lastModifiedAt }

// Person returns the person payload, or false when the record is not a person.
func (r *Record) Person() (*Person, bool) {
	return r.person, r.kind == KindPerson && r.person != nil
}

// Organization returns the organization payload, or false when the record is
// not an organization.
func (r *Record) Organization() (*Organization, bool) {
	return r.organization, r.kind == KindOrganization && r.organization != nil
}

// SetDiagnostics replaces the callback that receives validation diagnostics
// for later writes.
func (r *Record) SetDiagnostics(fn DiagnosticFunc) {
	r.report = fn
}

// HasDiagnostics reports whether a diagnostics callback is attached.
func (r *Record) HasDiagnostics() bool {
	return r.report != nil
}

// ListFields returns the names accepted by SetField and GetField: the
// variant's own fields followed by the shared ones.
func (r *Record) ListFields() []string {
	own := r.ownFields()
	names := make([]string, 0, len(own)+len(baseFields))
	for _, f := range own {
		names = append(names, f.name)
	}
	for _, f := range baseFields {
		names = append(names, f.name)
	}
	return names
}

// SetField validates raw and stores it in the field called name. The
// variant's own fields are searched first, then the shared fields. It returns
// false, leaving the record untouched, when neither layer knows the name.
func (r *Record) SetField(name, raw string) bool {
	if f, ok := lookupField(r.ownFields(), name); ok {
		r.write(f, raw)
		return true
	}
	return r.setBaseField(name, raw)
}

// setBaseField is the shared layer of SetField.
func (r *Record) setBaseField(name, raw string) bool {
	f, ok := lookupField(baseFields, name)
	if !ok {
		return false
	}
	r.write(f, raw)
	return true
}

// GetField returns the value of the field called name using the same lookup
// order as SetField.
func (r *Record) GetField(name string) (string, bool) {
	if f, ok := lookupField(r.ownFields(), name); ok {
		return f.get(r), true
	}
	return r.getBaseField(name)
}

func (r *Record) getBaseField(name string) (string, bool) {
	f, ok := lookupField(baseFields, name)
	if !ok {
		return "", false
	}
	return f.get(r), true
}

// Describe returns a one-line identity: the organization name, or the
// person's name and surname.
func (r *Record) Describe() string {
	switch r.kind {
	case KindPerson:
		return r.person.name + " " + r.person.surname
	case KindOrganization:
		return r.organization.name
	default:
		return string(r.kind)
	}
}

// FullInfo renders every field, variant fields first, followed by the audit
// timestamps. One "Label: value" pair per line.
func (r *Record) FullInfo() string {
	var b strings.Builder
	for _, f := range r.ownFields() {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.get(r))
	}
	for _, f := range baseFields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.get(r))
	}
	fmt.Fprintf(&b, "Time created: %s\n", r.createdAt.Format(TimestampLayout))
	fmt.Fprintf(&b, "Time last edit: %s", r.lastModifiedAt.Format(TimestampLayout))
	return b.String()
}

func (r *Record) ownFields() []field {
	switch r.kind {
	case KindPerson:
		return personFields
	case KindOrganization:
		return organizationFields
	default:
		return nil
	}
}

// write runs the field's validator, stores the result, refreshes
// lastModifiedAt and reports a diagnostic when the input was replaced.
func (r *Record) write(f field, raw string) {
	r.assign(f, raw)
	r.touch()
}

// assign is write without the timestamp refresh; constructors use it.
// Input that already is the stored sentinel is not reported, so reloading a
// record with a coerced field stays quiet.
func (r *Record) assign(f field, raw string) {
	value, err := f.validate(raw)
	f.set(r, value)
	if err != nil && value != raw && r.report != nil {
		r.report(Diagnostic{Kind: r.kind, Field: f.name, Input: raw, Err: err})
	}
}

func (r *Record) touch() {
	t := now().Truncate(time.Second)
	if t.Before(r.createdAt) {
		t = r.createdAt
	}
	r.lastModifiedAt = t
}
