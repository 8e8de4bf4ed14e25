package fields

import (
	"github.com/goliatone/go-bootstrap3/pkg/choices"
	"github.com/goliatone/go-bootstrap3/pkg/widgets"
)

const classesHelpText = `Space separated classes that are added to the class. See ` +
	`<a href="http://getbootstrap.com/css/" target="_blank">Bootstrap 3 documentation</a>.`

// Classes declares free-form CSS classes.
func Classes(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageText, Blank: true, HasDefault: true, LegacyClass: LegacyTextField},
		Spec{Kind: KindClasses, Widget: widgets.NameMiniTextarea},
		"Classes", classesHelpText, options)
}

// LinkOrButton declares whether a link renders as a text link or a button.
func LinkOrButton(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageChar, MaxLength: 10, Default: LinkOrButtonDefault, HasDefault: true, LegacyClass: LegacyCharField},
		Spec{Kind: KindChoice, Widget: widgets.NameRadio, Choices: LinkOrButtonChoices.Clone()},
		"Type", "", options)
}

// Context declares a Bootstrap contextual colour keyword.
func Context(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageChar, MaxLength: 255, Default: ContextDefault, HasDefault: true, LegacyClass: LegacyCharField},
		Spec{Kind: KindChoice, Widget: widgets.NameRadio, Choices: ContextChoices.Clone()},
		"Context", "", options)
}

// Icon declares an icon name.
func Icon(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageChar, MaxLength: 255, Blank: true, Default: IconDefault, HasDefault: true, LegacyClass: LegacyCharField},
		Spec{Kind: KindChar, Widget: widgets.NameIcon},
		"Icon", "", options)
}

// MiniText declares a short text rendered in a one-line textarea.
func MiniText(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageText, Blank: true, HasDefault: true, LegacyClass: LegacyTextField},
		Spec{Kind: KindChar, Widget: widgets.NameMiniTextarea},
		"", "", options)
}

// Responsive declares the per-breakpoint visibility classes, stored space
// separated.
func Responsive(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageText, Blank: true, HasDefault: true, LegacyClass: LegacyTextField},
		Spec{Kind: KindMultipleChoice, Widget: widgets.NameCheckbox, Choices: ResponsiveChoices.Clone()},
		"Responsive", "", options)
}

// ResponsivePrint declares the print visibility classes.
func ResponsivePrint(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageText, Blank: true, HasDefault: true, LegacyClass: LegacyTextField},
		Spec{Kind: KindMultipleChoice, Widget: widgets.NameCheckbox, Choices: ResponsivePrintChoices.Clone()},
		"Responsive print", "", options)
}

// Size declares a Bootstrap size keyword. Its choices carry an explicit ""
// entry for the default size.
func Size(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageChar, MaxLength: 255, Blank: true, Default: SizeDefault, HasDefault: true, LegacyClass: LegacyCharField},
		Spec{Kind: KindChoice, Widget: widgets.NameRadio, Choices: SizeChoices.Clone()},
		"Size", "", options)
}

// Integer declares a whole number with optional bounds (see WithMin/WithMax).
func Integer(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageInteger, LegacyClass: LegacyIntegerField},
		Spec{Kind: KindInteger, Widget: widgets.NameNumber},
		"", "", options)
}

// Char declares a plain string limited to maxLength characters.
func Char(name string, maxLength int, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageChar, MaxLength: maxLength, LegacyClass: LegacyCharField},
		Spec{Kind: KindChar, Widget: widgets.NameText},
		"", "", options)
}

// Choice declares a string restricted to set.
func Choice(name string, set choices.Set, maxLength int, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageChar, MaxLength: maxLength, LegacyClass: LegacyCharField},
		Spec{Kind: KindChoice, Widget: widgets.NameSelect, Choices: set.Clone()},
		"", "", options)
}

// URL declares an absolute URL.
func URL(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageURL, MaxLength: 200, LegacyClass: "django.db.models.fields.URLField"},
		Spec{Kind: KindURL, Widget: widgets.NameURL},
		"", "", options)
}

// Email declares an email address.
func Email(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageEmail, MaxLength: 254, LegacyClass: "django.db.models.fields.EmailField"},
		Spec{Kind: KindEmail, Widget: widgets.NameEmail},
		"", "", options)
}

// Reference declares an optional reference to another entity (a page or a
// file asset), stored as its identifier.
func Reference(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageReference, Blank: true, Null: true},
		Spec{Kind: KindReference, Widget: widgets.NameText},
		"", "", options)
}

// Attributes declares an open mapping of extra HTML attributes. Keys listed
// with WithExcludedKeys are rejected.
func Attributes(name string, options ...Option) Field {
	return newField(name,
		Storage{Kind: StorageAttributes, Blank: true, HasDefault: true},
		Spec{Kind: KindAttributes, Widget: widgets.NameAttributes},
		"Attributes", "", options)
}
