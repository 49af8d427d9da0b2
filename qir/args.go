package qir

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// SplitArgs splits raw argument text on top-level commas. Commas nested in
// parentheses, as in constant expressions, stay inside their fragment.
func SplitArgs(text string) []string {
	var (
		args  []string
		depth int
		start int
	)

	flush := func(end int) {
		frag := strings.TrimSpace(text[start:end])
		if frag != "" {
			args = append(args, frag)
		}
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(text))

	return args
}

// DecodeArgs splits the argument text and decodes every fragment.
func DecodeArgs(text string) []uint64 {
	frags := SplitArgs(text)
	payloads := make([]uint64, len(frags))
	for i, f := range frags {
		payloads[i] = DecodeArg(f)
	}

	return payloads
}

// DecodeArg turns one argument fragment into its numeric payload. The rules
// are checked in order:
//
//  1. a null pointer decodes to 0 (a whole "null" token, so the nonnull
//     attribute does not count);
//  2. a floating point argument decodes to the IEEE-754 bits of its value;
//  3. an inttoptr cast decodes to the embedded i64 literal;
//  4. anything else decodes to its trailing integer literal.
func DecodeArg(fragment string) uint64 {
	switch {
	case hasToken(fragment, "null"):
		return 0
	case isFloatArg(fragment):
		return math.Float64bits(floatLiteral(fragment))
	case strings.Contains(fragment, "inttoptr"):
		return castLiteral(fragment)
	default:
		return trailingLiteral(fragment)
	}
}

// hasToken reports whether tok appears as a whole word of the fragment.
func hasToken(fragment, tok string) bool {
	words := strings.FieldsFunc(fragment, func(r rune) bool {
		switch r {
		case ' ', '\t', '(', ')', ',':
			return true
		}
		return false
	})

	return slices.Contains(words, tok)
}

func isFloatArg(fragment string) bool {
	for _, f := range strings.Fields(fragment) {
		switch f {
		case "double", "float", "half":
			return true
		}
	}

	return false
}

// floatLiteral parses the last token of a float argument. LLVM prints some
// doubles as 0x-prefixed hexadecimal bit patterns.
func floatLiteral(fragment string) float64 {
	fields := strings.Fields(fragment)
	lit := fields[len(fields)-1]

	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		bits, err := strconv.ParseUint(lit[2:], 16, 64)
		if err != nil {
			return 0
		}
		return math.Float64frombits(bits)
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0
	}

	return v
}

// castLiteral extracts N from "inttoptr (i64 N to %T*)".
func castLiteral(fragment string) uint64 {
	cast := fragment[strings.Index(fragment, "inttoptr"):]
	fields := strings.Fields(strings.NewReplacer("(", " ", ")", " ").Replace(cast))

	for i := 0; i+1 < len(fields); i++ {
		if fields[i] == "i64" {
			return parseInteger(fields[i+1])
		}
	}

	return 0
}

// trailingLiteral parses the run of digits at the end of the fragment, with
// an optional minus sign.
func trailingLiteral(fragment string) uint64 {
	s := strings.TrimSpace(fragment)

	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0
	}
	if start > 0 && s[start-1] == '-' {
		start--
	}

	return parseInteger(s[start:end])
}

// parseInteger parses a decimal literal. Negative values wrap to their two's
// complement bit pattern.
func parseInteger(lit string) uint64 {
	if strings.HasPrefix(lit, "-") {
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return 0
		}
		return uint64(v)
	}

	v, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		return 0
	}

	return v
}
