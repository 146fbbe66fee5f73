package enricher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Default attribute names.
const (
	AttrVoltage    = "voltage"
	AttrPower      = "power"
	AttrWeight     = "weight"
	AttrDimensions = "dimensions"
	AttrCapacity   = "capacity"
	AttrStorage    = "storage"
)

var (
	voltageRe    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*v(?:olts?)?\b`)
	powerRe      = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(w|kw)(?:atts?)?\b`)
	weightRe     = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(kg|g)(?:rams?)?\b`)
	dimensionsRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*[x×]\s*(\d+(?:[.,]\d+)?)(?:\s*[x×]\s*(\d+(?:[.,]\d+)?))?\s*(mm|cm|m)\b`)
	capacityRe   = regexp.MustCompile(`(?i)(\d+)\s*mah\b`)
	storageRe    = regexp.MustCompile(`(?i)(\d+)\s*(gb|tb)\b`)
)

func defaultStrategies() map[string]Strategy {
	return map[string]Strategy{
		AttrVoltage:    extractVoltage,
		AttrPower:      extractPower,
		AttrWeight:     extractWeight,
		AttrDimensions: extractDimensions,
		AttrCapacity:   extractCapacity,
		AttrStorage:    extractStorage,
	}
}

func extractVoltage(text string) (string, bool) {
	value, ok := singleMatch(voltageRe, text, func(groups []string) string {
		return groups[1]
	})
	if !ok {
		return "", false
	}

	volts, ok := parseNumber(value)
	if !ok {
		return "", false
	}

	return formatNumber(volts) + "V", true
}

func extractPower(text string) (string, bool) {
	return singleUnitValue(powerRe, text, map[string]float64{"w": 1, "kw": 1000}, "W")
}

func extractWeight(text string) (string, bool) {
	return singleUnitValue(weightRe, text, map[string]float64{"g": 1, "kg": 1000}, "g")
}

func extractDimensions(text string) (string, bool) {
	return singleMatch(dimensionsRe, text, func(groups []string) string {
		unit := strings.ToLower(groups[4])
		dims := groups[1] + "x" + groups[2]
		if groups[3] != "" {
			dims += "x" + groups[3]
		}
		return strings.ReplaceAll(dims, ",", ".") + unit
	})
}

func extractCapacity(text string) (string, bool) {
	return singleMatch(capacityRe, text, func(groups []string) string {
		return groups[1] + "mAh"
	})
}

func extractStorage(text string) (string, bool) {
	return singleUnitValue(storageRe, text, map[string]float64{"gb": 1, "tb": 1024}, "GB")
}

// singleMatch returns the formatted match only when the pattern matches
// exactly one distinct value in text.
func singleMatch(re *regexp.Regexp, text string, format func(groups []string) string) (string, bool) {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}

	value := format(matches[0])
	for _, match := range matches[1:] {
		if format(match) != value {
			return "", false
		}
	}

	return value, true
}

// singleUnitValue extracts a number with a unit, converts it to the base
// unit and formats it. Multiple occurrences must agree after conversion.
func singleUnitValue(re *regexp.Regexp, text string, factors map[string]float64, baseUnit string) (string, bool) {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}

	converted := make([]float64, 0, len(matches))
	for _, match := range matches {
		number, ok := parseNumber(match[1])
		if !ok {
			return "", false
		}
		converted = append(converted, number*factors[strings.ToLower(match[2])])
	}

	for _, value := range converted[1:] {
		if value != converted[0] {
			return "", false
		}
	}

	return formatNumber(converted[0]) + baseUnit, true
}

func parseNumber(s string) (float64, bool) {
	number, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return number, true
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}

	return fmt.Sprintf("%g", f)
}
