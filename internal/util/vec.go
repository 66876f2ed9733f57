package util

import (
	"fmt"
	"regexp"
	"strconv"
)

var vecPattern = regexp.MustCompile(`^\s*\(?\s*([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)\s*[,xX ]\s*([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)\s*\)?\s*$`)

// ParseVec2 parses a 2D vector such as "1,1", "(0.5, -2)" or "3x4".
func ParseVec2(s string) (x, y float64, err error) {
	matches := vecPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid vector: '%s'. Use format like '1,1' or '0.5,-2'", s)
	}

	x, err = strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x component: %v", err)
	}
	y, err = strconv.ParseFloat(matches[2], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y component: %v", err)
	}
	return x, y, nil
}

// FormatVec2 is the inverse of ParseVec2.
func FormatVec2(x, y float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64) + "," + strconv.FormatFloat(y, 'g', -1, 64)
}
