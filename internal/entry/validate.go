package entry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Emerald cost bounds for a single trade, in emeralds.
const (
	MinCost = 1
	MaxCost = 64
)

// NormalizeName trims and lowercases a user-supplied identifier. Empty input
// is rejected so prompt loops can reprompt.
func NormalizeName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", errors.New("input cannot be empty")
	}
	return name, nil
}

// ParseCoordinate accepts any integer block coordinate.
func ParseCoordinate(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("coordinates must be whole numbers")
	}
	return value, nil
}

// ParseLevel accepts an integer in [1, max].
func ParseLevel(raw string, max int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("level must be a number")
	}
	if value < 1 || value > max {
		return 0, fmt.Errorf("level must be between 1 and %d", max)
	}
	return value, nil
}

// ParseCost accepts an integer emerald cost in [MinCost, MaxCost].
func ParseCost(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("cost must be a number")
	}
	if value < MinCost || value > MaxCost {
		return 0, fmt.Errorf("cost must be between %d and %d emeralds", MinCost, MaxCost)
	}
	return value, nil
}
