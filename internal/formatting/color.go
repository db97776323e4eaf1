package formatting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/image/colornames"
)

// ColorTag is the validator tag for CSS colors, registered by RegisterColorValidation.
const ColorTag = "csscolor"

var (
	colorValidate = validator.New()
	rgbPattern    = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+%?\s*)?\)$`)
)

// ValidColor reports whether value is a CSS color: hex, rgb(a), hsl(a), or a named color.
func ValidColor(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if _, ok := colornames.Map[strings.ToLower(value)]; ok {
		return true
	}
	return colorValidate.Var(value, "iscolor") == nil
}

// RegisterColorValidation adds the csscolor tag to v.
func RegisterColorValidation(v *validator.Validate) error {
	return v.RegisterValidation(ColorTag, func(fl validator.FieldLevel) bool {
		return ValidColor(fl.Field().String())
	})
}

// ColorHex returns the six-digit uppercase hex form of a color without "#".
// ok is false for colors without an exact RGB form, such as hsl().
func ColorHex(value string) (string, bool) {
	value = strings.TrimSpace(value)

	if c, found := colornames.Map[strings.ToLower(value)]; found {
		return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B), true
	}

	if strings.HasPrefix(value, "#") && colorValidate.Var(value, "hexcolor") == nil {
		hex := strings.ToUpper(value[1:])
		switch len(hex) {
		case 3, 4:
			return string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
		default:
			return hex[:6], true
		}
	}

	if m := rgbPattern.FindStringSubmatch(strings.ToLower(value)); m != nil {
		var parts [3]int
		for i := range parts {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return "", false
			}
			parts[i] = n
		}
		return fmt.Sprintf("%02X%02X%02X", parts[0], parts[1], parts[2]), true
	}

	return "", false
}
