package widgets

// Canonical widget names used by the default registry and field descriptors.
const (
	NameText         = "text"
	NameTextarea     = "textarea"
	NameMiniTextarea = "mini_textarea"
	NameNumber       = "number"
	NameURL          = "url"
	NameEmail        = "email"
	NameIcon         = "icon"
	NameSelect       = "select"
	NameRadio        = "radio"
	NameCheckbox     = "checkbox"
	NameAttributes   = "attributes"
)
