package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// IntOrString is an int that coerces from both JSON numbers and numeric
// strings, and from form values. Clients submit duration either way.
type IntOrString int

func (v *IntOrString) UnmarshalJSON(data []byte) error {
	return v.parse(strings.Trim(string(data), `"`))
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form and query
// values.
func (v *IntOrString) UnmarshalParam(param string) error {
	return v.parse(param)
}

func (v *IntOrString) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*v = 0
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parse integer value failed: %w", err)
	}
	*v = IntOrString(parsed)
	return nil
}
