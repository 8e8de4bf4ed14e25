package plugins

import (
	"github.com/goliatone/go-bootstrap3/pkg/choices"
	"github.com/goliatone/go-bootstrap3/pkg/fields"
)

// DefaultCarouselStyle is the built-in carousel style.
const DefaultCarouselStyle = "standard"

// DefaultCarouselInterval is the slide interval in milliseconds.
const DefaultCarouselInterval = 5000

// CarouselStyleChoices returns the built-in style followed by extra, skipping
// entries that duplicate an earlier value.
func CarouselStyleChoices(extra choices.Set) choices.Set {
	out := choices.Pairs(DefaultCarouselStyle, "Standard")
	for _, choice := range extra.Leaves() {
		if out.Contains(choice.Value()) {
			continue
		}
		out = append(out, choice)
	}
	return out
}

// Carousel is a slide show.
type Carousel struct {
	Style    string
	Interval int
	Classes  string
}

// CarouselFields declares the carousel fields. extraStyles usually comes from
// config.Config.StyleChoices.
func CarouselFields(extraStyles choices.Set) []fields.Field {
	return []fields.Field{
		fields.Choice("style", CarouselStyleChoices(extraStyles), 255,
			fields.WithLabel("Style"), fields.WithDefault(DefaultCarouselStyle)),
		fields.Integer("interval", fields.WithMin(0), fields.WithDefault("5000"),
			fields.WithHelpText("The amount of time to delay between automatically cycling an item. If 0, carousel will not automatically cycle.")),
		fields.Classes("classes"),
	}
}

// CarouselFromValues builds a Carousel from cleaned stored values.
func CarouselFromValues(values map[string]string) (Carousel, error) {
	c := Carousel{Style: values["style"], Interval: DefaultCarouselInterval, Classes: values["classes"]}
	interval, err := parseOptionalInt(values, "interval")
	if err != nil {
		return Carousel{}, err
	}
	if interval != nil {
		c.Interval = *interval
	}
	if c.Style == "" {
		c.Style = DefaultCarouselStyle
	}
	return c, nil
}

// CSSClasses returns the carousel container classes.
func (c Carousel) CSSClasses() string {
	var out classList
	out.add("carousel", "slide", "carousel-"+c.Style, c.Classes)
	return out.String()
}
