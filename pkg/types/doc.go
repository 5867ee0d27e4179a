// Package types defines the contact record model: the Person and Organization
// variants, field validators, the field-by-name dispatch protocol, catalog
// configuration, and the standard error values shared by the storage backends.
package types
