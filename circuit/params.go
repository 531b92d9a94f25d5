package circuit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// parseParamExpr parses a single parameter expression, supporting plain numbers and pi expressions.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5", "1e-3"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	m := piExprRegex.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, false
	}
	coeff := 1.0
	if m[2] != "" {
		var err error
		if coeff, err = strconv.ParseFloat(m[2], 64); err != nil {
			return 0, false
		}
	}
	result := coeff * math.Pi
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}
	if m[1] == "-" {
		result = -result
	}
	return result, true
}

// formatParam formats a parameter value, using pi notation for common fractions.
func formatParam(val float64) string {
	piForms := []struct {
		value   float64
		display string
	}{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}
	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// parseParams parses a comma-separated parameter list.
func parseParams(input string) ([]float64, error) {
	var params []float64
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, ok := parseParamExpr(part)
		if !ok {
			return nil, fmt.Errorf("%w: bad parameter %q", ErrSyntax, part)
		}
		params = append(params, v)
	}
	return params, nil
}
