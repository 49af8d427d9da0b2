package qir

// Operator namespaces recognized in call instructions.
const (
	QISPrefix = "__quantum__qis__"
	RTPrefix  = "__quantum__rt__"
)

// Kind classifies a decoded line.
type Kind int

const (
	KindInert Kind = iota
	KindLabel
	KindCondBranch
	KindUncondBranch
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "Label"
	case KindCondBranch:
		return "CondBranch"
	case KindUncondBranch:
		return "UncondBranch"
	case KindCall:
		return "Call"
	default:
		return "Inert"
	}
}

// Instruction is one decoded line of program text. Which fields are set
// depends on Kind.
type Instruction struct {
	Kind Kind
	Raw  string // Raw line as it appears in the program

	// KindLabel
	Label string

	// KindCondBranch
	Cond string // Condition variable, e.g. "%0"
	Then string
	Else string

	// KindUncondBranch
	Target string

	// KindCall
	Result  string // Bound variable, empty when the call is not assigned
	RetType string
	Op      string // Full operator name, e.g. "__quantum__qis__h__body"
	Args    string // Raw argument text between the call parentheses
}

// BindsResult reports whether a call assigns its return value to a variable.
func (i Instruction) BindsResult() bool {
	return i.Kind == KindCall && i.Result != ""
}
