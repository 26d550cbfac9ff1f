package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseFlag reports whether a boolean filter is switched on. Only "1" and
// "true" enable it; anything else leaves the filter off.
func parseFlag(v string) bool {
	v = strings.TrimSpace(v)
	return v == "1" || strings.EqualFold(v, "true")
}

func parseOptionalFloat(name, v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &f, nil
}

func parseOptionalPercent(name, v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 100 {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &n, nil
}
