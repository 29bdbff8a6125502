package constrain

// Relation is the comparison between the two sides of a constraint.
type Relation int

const (
	// Equal requires subject == multiplier * counterpart + constant (default).
	Equal Relation = iota
	// LessOrEqual requires subject <= multiplier * counterpart + constant.
	LessOrEqual
	// GreaterOrEqual requires subject >= multiplier * counterpart + constant.
	GreaterOrEqual
)

// String returns the relation's operator.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// ParseRelation accepts an operator ("==", "<=", ">=") or a name
// ("equal", "lessOrEqual", "greaterOrEqual").
func ParseRelation(s string) (Relation, bool) {
	switch s {
	case "==", "=", "equal":
		return Equal, true
	case "<=", "lessOrEqual", "canShrink":
		return LessOrEqual, true
	case ">=", "greaterOrEqual", "canGrow":
		return GreaterOrEqual, true
	default:
		return Equal, false
	}
}
