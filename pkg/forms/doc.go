// Package forms binds declared fields to submitted values. A Form cleans
// url.Values into stored strings and renders Bootstrap 3 form-group markup,
// choosing a widget per field through a priority matcher registry.
package forms
