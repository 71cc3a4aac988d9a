package models

import (
	"strconv"
	"strings"
)

// FlexNumber decodes a JSON number or a numeric string, falling back to zero
// when the value cannot be parsed. Clients send size/price/budget as either
// form depending on the input widget.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

func (n FlexNumber) Float64() float64 { return float64(n) }
