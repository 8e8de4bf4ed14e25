// Package fields declares the persisted fields of Bootstrap content entities.
// A Field composes two independent descriptions: Storage, the persisted
// column shape (kind, max length, blank/null, default), and Spec, the form
// representation (kind, widget, choices, bounds). FormField derives what a
// form needs from both and Clean validates submitted values against it.
// Invalid values surface as *ValidationError at clean time; declaring a field
// never fails.
package fields
