package types

// field binds a dispatch name to its validator and storage. Tables are
// ordered; the order is the ListFields and FullInfo order.
type field struct {
	name     string // Name accepted by SetField and GetField.
	label    string // Label used by FullInfo.
	validate Validator
	get      func(r *Record) string
	set      func(r *Record, value string)
}

// Field names accepted by SetField.
const (
	FieldName    = "name"
	FieldSurname = "surname"
	FieldBirth   = "birth"
	FieldGender  = "gender"
	FieldAddress = "address"
	FieldNumber  = "number"
)

// baseFields are shared by every kind.
var baseFields = []field{
	{
		name:     FieldNumber,
		label:    "Number",
		validate: ValidatePhone,
		get:      func(r *Record) string { return r.phoneNumber },
		set:      func(r *Record, v string) { r.phoneNumber = v },
	},
}

var personFields = []field{
	{
		name:     FieldName,
		label:    "Name",
		validate: ValidateText,
		get:      func(r *Record) string { return r.person.name },
		set:      func(r *Record, v string) { r.person.name = v },
	},
	{
		name:     FieldSurname,
		label:    "Surname",
		validate: ValidateText,
		get:      func(r *Record) string { return r.person.surname },
		set:      func(r *Record, v string) { r.person.surname = v },
	},
	{
		name:     FieldBirth,
		label:    "Birth date",
		validate: ValidateDate,
		get:      func(r *Record) string { return r.person.birthDate },
		set:      func(r *Record, v string) { r.person.birthDate = v },
	},
	{
		name:     FieldGender,
		label:    "Gender",
		validate: ValidateGender,
		get:      func(r *Record) string { return r.person.gender },
		set:      func(r *Record, v string) { r.person.gender = v },
	},
}

var organizationFields = []field{
	{
		name:     FieldName,
		label:    "Organization name",
		validate: ValidateText,
		get:      func(r *Record) string { return r.organization.name },
		set:      func(r *Record, v string) { r.organization.name = v },
	},
	{
		name:     FieldAddress,
		label:    "Address",
		validate: ValidateText,
		get:      func(r *Record) string { return r.organization.address },
		set:      func(r *Record, v string) { r.organization.address = v },
	},
}

func lookupField(fields []field, name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}
