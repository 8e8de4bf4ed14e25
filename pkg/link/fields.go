package link

import "github.com/goliatone/go-bootstrap3/pkg/fields"

// Field names declared by Fields.
const (
	FieldURL        = "link_url"
	FieldPage       = "link_page"
	FieldMailto     = "link_mailto"
	FieldPhone      = "link_phone"
	FieldFile       = "link_file"
	FieldAnchor     = "link_anchor"
	FieldTarget     = "link_target"
	FieldAttributes = "link_attributes"
)

// ReservedAttributes are rendered by the entity itself and cannot be set
// through Attributes.
var ReservedAttributes = fields.ReservedLinkAttributes

// Fields declares the link fields in display order.
func Fields() []fields.Field {
	return []fields.Field{
		fields.URL(FieldURL, fields.WithLabel("External link"), fields.WithBlank(true), fields.WithDefault(""),
			fields.WithHelpText("Provide a valid URL to an external website.")),
		fields.Reference(FieldPage, fields.WithLabel("Internal link"),
			fields.WithHelpText("If provided, overrides the external link.")),
		fields.Email(FieldMailto, fields.WithLabel("Email address"), fields.WithBlank(true), fields.WithNull(true)),
		fields.Char(FieldPhone, 40, fields.WithLabel("Phone"), fields.WithBlank(true), fields.WithNull(true)),
		fields.Reference(FieldFile, fields.WithLabel("File")),
		fields.Char(FieldAnchor, 128, fields.WithLabel("Anchor"), fields.WithBlank(true),
			fields.WithHelpText(`Appends the value only after the internal or external link. Do <em>not</em> include a preceding "#" symbol.`)),
		fields.Choice(FieldTarget, fields.TargetChoices, 255, fields.WithLabel("Target"), fields.WithBlank(true)),
		fields.Attributes(FieldAttributes, fields.WithExcludedKeys(ReservedAttributes...)),
	}
}
