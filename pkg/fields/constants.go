package fields

import "github.com/goliatone/go-bootstrap3/pkg/choices"

// Defaults used by the built-in descriptors.
const (
	LinkOrButtonDefault = "lnk"
	ContextDefault      = "default"
	SizeDefault         = ""
	IconDefault         = ""
)

// Legacy class names reported by LegacyDescriptor.
const (
	LegacyTextField    = "django.db.models.fields.TextField"
	LegacyCharField    = "django.db.models.fields.CharField"
	LegacyIntegerField = "django.db.models.fields.IntegerField"
)

// Keys an attributes field never accepts because the entity renders them
// itself.
var ReservedLinkAttributes = []string{"class", "href", "target"}

var (
	// LinkOrButtonChoices selects whether a link renders as text or a button.
	LinkOrButtonChoices = choices.Pairs(
		"lnk", "link",
		"btn", "button",
	)

	// ContextChoices are the Bootstrap contextual colour keywords.
	ContextChoices = choices.Pairs(
		"default", "Default",
		"primary", "Primary",
		"success", "Success",
		"info", "Info",
		"warning", "Warning",
		"danger", "Danger",
	)

	// ButtonContextChoices add the "link" button style.
	ButtonContextChoices = ContextChoices.Concat(choices.Pairs("link", "Link"))

	// SizeChoices declare an explicit "" entry for the default size, which
	// suppresses the automatic blank option.
	SizeChoices = choices.Pairs(
		"lg", "Large",
		"", "Default",
		"sm", "Small",
		"xs", "Extra small",
	)

	// TargetChoices are the browser targets of a link.
	TargetChoices = choices.Pairs(
		"_blank", "Open in new window",
		"_self", "Open in same window",
		"_parent", "Delegate to parent",
		"_top", "Delegate to top",
	)

	// DeviceChoices are the Bootstrap grid breakpoints.
	DeviceChoices = choices.Pairs(
		"xs", "Extra small",
		"sm", "Small",
		"md", "Medium",
		"lg", "Large",
	)

	// ResponsiveChoices group the visibility utilities per breakpoint.
	ResponsiveChoices = responsiveChoices()

	// ResponsivePrintChoices are the print visibility utilities.
	ResponsivePrintChoices = choices.Pairs(
		"visible-print", "Visible when printing",
		"hidden-print", "Hidden when printing",
	)
)

func responsiveChoices() choices.Set {
	out := make(choices.Set, 0, len(DeviceChoices))
	for _, device := range DeviceChoices {
		out = append(out, choices.Group(device.Label(),
			choices.Leaf("visible-"+device.Value(), "Visible"),
			choices.Leaf("hidden-"+device.Value(), "Hidden"),
		))
	}
	return out
}
