package customer

import "strings"

// Unselected is the value dropdown-style form controls submit when the
// operator made no selection.
const Unselected = "-"

// FormValue converts a submitted form value into an attribute value. Nil and
// Unselected both mean the attribute was not provided.
func FormValue(v *string) *string {
	if v == nil || *v == Unselected {
		return nil
	}
	return v
}

// FromForm converts submitted form values into Fields.
func FromForm(f Fields) Fields {
	var out Fields
	for _, col := range attributeColumns {
		out.Set(col, FormValue(f.Get(col)))
	}
	return out
}

// FormComplete reports whether a form carries an Org plus at least one
// selected attribute, the minimum the form accepts before submitting.
func FormComplete(org string, f Fields) bool {
	return strings.TrimSpace(org) != "" && len(FromForm(f).Effective()) > 0
}
