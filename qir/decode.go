package qir

import "strings"

// Return types a call may carry. Anything else makes the line inert.
var callRetTypes = map[string]bool{
	"void":     true,
	"i1":       true,
	"%Result*": true,
	"ptr":      true,
}

// Decode classifies a single line of program text and extracts its operands.
// It never executes anything; lines it does not recognize are KindInert.
func Decode(line string) Instruction {
	inst := Instruction{Raw: line}

	text := strings.TrimSpace(stripComment(line))
	switch {
	case text == "":
		return inst
	case strings.HasSuffix(text, ":"):
		inst.Kind = KindLabel
		inst.Label = strings.TrimSpace(strings.TrimSuffix(text, ":"))
	case strings.HasPrefix(text, "br "):
		decodeBranch(text, &inst)
	default:
		decodeCall(text, &inst)
	}

	return inst
}

// stripComment drops a trailing ';' comment that is not inside a quoted
// string.
func stripComment(line string) string {
	inQuote := false
	for i, r := range line {
		switch r {
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				return line[:i]
			}
		}
	}

	return line
}

// decodeBranch handles
//
//	br i1 <cond>, label <then>, label <else>
//	br label <target>
func decodeBranch(text string, inst *Instruction) {
	parts := SplitArgs(strings.TrimPrefix(text, "br "))

	switch len(parts) {
	case 1:
		target, ok := labelOperand(parts[0])
		if !ok {
			return
		}
		inst.Kind = KindUncondBranch
		inst.Target = target
	case 3:
		cond := strings.Fields(parts[0])
		if len(cond) != 2 || cond[0] != "i1" {
			return
		}
		then, ok1 := labelOperand(parts[1])
		els, ok2 := labelOperand(parts[2])
		if !ok1 || !ok2 {
			return
		}
		inst.Kind = KindCondBranch
		inst.Cond = cond[1]
		inst.Then = then
		inst.Else = els
	}
}

// labelOperand parses "label %name" and returns "name".
func labelOperand(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 || fields[0] != "label" {
		return "", false
	}

	return strings.TrimPrefix(fields[1], "%"), true
}

// decodeCall handles
//
//	[<var> =] [tail|musttail|notail] call <rettype> @<op>(<args>) [attrs]
func decodeCall(text string, inst *Instruction) {
	rest := text
	result := ""

	if eq := strings.Index(rest, "="); eq > 0 && eq < strings.Index(rest, "call ") {
		lhs := strings.TrimSpace(rest[:eq])
		if !strings.HasPrefix(lhs, "%") || strings.ContainsAny(lhs, " \t") {
			return
		}
		result = lhs
		rest = strings.TrimSpace(rest[eq+1:])
	}

	rest = stripTailMarker(rest)
	if !strings.HasPrefix(rest, "call ") {
		return
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "call "))

	at := strings.Index(rest, "@")
	if at < 0 {
		return
	}
	retType := strings.TrimSpace(rest[:at])
	if !callRetTypes[retType] {
		return
	}

	open := strings.Index(rest[at:], "(")
	if open < 0 {
		return
	}
	open += at
	op := rest[at+1 : open]
	if !strings.HasPrefix(op, QISPrefix) && !strings.HasPrefix(op, RTPrefix) {
		return
	}

	closing := matchParen(rest, open)
	if closing < 0 {
		return
	}

	inst.Kind = KindCall
	inst.Result = result
	inst.RetType = retType
	inst.Op = op
	inst.Args = rest[open+1 : closing]
}

// Markers LLVM may put in front of a call.
var tailMarkers = []string{"tail ", "musttail ", "notail "}

func stripTailMarker(text string) string {
	for _, m := range tailMarkers {
		if strings.HasPrefix(text, m) {
			return strings.TrimSpace(strings.TrimPrefix(text, m))
		}
	}

	return text
}

// matchParen returns the index of the parenthesis closing the one at open, or
// -1 if the text is unbalanced.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
