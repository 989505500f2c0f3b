package validator

import "strings"

// validMobilePrefixes are the UAE mobile operator prefixes accepted by
// the contact form.
var validMobilePrefixes = map[string]struct{}{
	"50": {}, "51": {}, "52": {}, "54": {}, "55": {}, "56": {},
}

// cleanMobile strips every character except digits and a single leading
// plus sign.
func cleanMobile(mobile string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(mobile) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidUAEMobile reports whether mobile is a well-formed UAE mobile
// number in one of four shapes:
//
//	+971501234567  (international)
//	971501234567   (international without plus)
//	0501234567     (local)
//	501234567      (local without leading zero)
//
// Shapes are checked longest country prefix first so the parse is
// unambiguous.
func ValidUAEMobile(mobile string) bool {
	m := cleanMobile(mobile)

	switch {
	case strings.HasPrefix(m, "+971") && len(m) == 13:
		return operatorPrefixValid(m[4:6])
	case strings.HasPrefix(m, "971") && len(m) == 12:
		return operatorPrefixValid(m[3:5])
	case strings.HasPrefix(m, "0") && len(m) == 10:
		return operatorPrefixValid(m[1:3])
	case len(m) == 9:
		return operatorPrefixValid(m[0:2])
	}

	return false
}

func operatorPrefixValid(prefix string) bool {
	_, ok := validMobilePrefixes[prefix]
	return ok
}
