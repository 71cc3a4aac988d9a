package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

var ErrInvalidCoordinates = errors.New("invalid coordinates format, expected \"latitude,longitude\"")

// ParseCoordinates checks a "lat,lng" string and returns both values. The
// string must split on a single comma into exactly two finite numbers.
func ParseCoordinates(s string) (lat, lng float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidCoordinates
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	if math.IsInf(lat, 0) || math.IsNaN(lat) || math.IsInf(lng, 0) || math.IsNaN(lng) {
		return 0, 0, ErrInvalidCoordinates
	}
	return lat, lng, nil
}
