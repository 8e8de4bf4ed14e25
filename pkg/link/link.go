// Package link models entities that point somewhere: an external URL, an
// internal page, a phone number, an email address or a file asset.
package link

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
)

// Page is an internal page reference.
type Page interface {
	AbsoluteURL() string
}

// File is a stored file asset.
type File interface {
	URL() string
}

// Link holds the link fields shared by link-bearing plugins. At most one of
// URL, Page, Phone, Mailto and File is expected to be set; Resolve picks the
// first populated one.
type Link struct {
	URL        string      `json:"link_url,omitempty" validate:"omitempty,url,max=200"`
	Page       Page        `json:"-"`
	Mailto     string      `json:"link_mailto,omitempty" validate:"omitempty,email,max=254"`
	Phone      string      `json:"link_phone,omitempty" validate:"omitempty,max=40"`
	File       File        `json:"-"`
	Anchor     string      `json:"link_anchor,omitempty" validate:"omitempty,max=128"`
	Target     string      `json:"link_target,omitempty" validate:"omitempty,oneof=_blank _self _parent _top"`
	Attributes attrs.Attrs `json:"link_attributes,omitempty"`
}

// Resolve returns the href of the link. Precedence is page, url, phone,
// mailto, file. A non-empty anchor is appended as "#anchor" even when nothing
// else is set.
func (l Link) Resolve() string {
	href := l.base()
	if l.Anchor != "" {
		href += "#" + l.Anchor
	}
	return href
}

func (l Link) base() string {
	switch {
	case IsSet(l.Page):
		return l.Page.AbsoluteURL()
	case l.URL != "":
		return l.URL
	case l.Phone != "":
		return "tel:" + strings.ReplaceAll(l.Phone, " ", "")
	case l.Mailto != "":
		return "mailto:" + l.Mailto
	case IsSet(l.File):
		return l.File.URL()
	default:
		return ""
	}
}

// IsSet reports whether ref holds a usable value. A typed nil pointer stored
// in the interface counts as unset.
func IsSet(ref any) bool {
	if ref == nil {
		return false
	}
	v := reflect.ValueOf(ref)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

// Attrs returns the anchor tag attributes: the free-form attributes overlaid
// with href and, when set, target.
func (l Link) Attrs() attrs.Attrs {
	overrides := attrs.Attrs{"href": l.Resolve()}
	if l.Target != "" {
		overrides["target"] = l.Target
	}
	return attrs.Merge(attrs.Without(l.Attributes, ReservedAttributes...), overrides)
}
