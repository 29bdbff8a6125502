package constrain

// Attribute identifies the part of an item's frame a constraint acts on.
type Attribute int

const (
	// NotAnAttribute is the unset value. It is never legal in an installed
	// constraint and is what Lookup returns for names it does not know.
	NotAnAttribute Attribute = iota

	Top
	Bottom
	Leading
	Trailing
	Left
	Right
	Width
	Height
	CenterX
	CenterY
	Baseline
	FirstBaseline
	LeadingMargin
	TrailingMargin
	TopMargin
	BottomMargin
	CenterXWithinMargins
	CenterYWithinMargins
)

// attributeNames holds the canonical spelling of every attribute.
// Indexed by Attribute; the sentinel maps to "".
var attributeNames = [...]string{
	NotAnAttribute:       "",
	Top:                  "top",
	Bottom:               "bottom",
	Leading:              "leading",
	Trailing:             "trailing",
	Left:                 "left",
	Right:                "right",
	Width:                "width",
	Height:               "height",
	CenterX:              "centerX",
	CenterY:              "centerY",
	Baseline:             "baseline",
	FirstBaseline:        "firstBaseline",
	LeadingMargin:        "leadingMargin",
	TrailingMargin:       "trailingMargin",
	TopMargin:            "topMargin",
	BottomMargin:         "bottomMargin",
	CenterXWithinMargins: "centerXWithinMargins",
	CenterYWithinMargins: "centerYWithinMargins",
}

var attributesByName = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attributeNames))
	for i, name := range attributeNames {
		if name != "" {
			m[name] = Attribute(i)
		}
	}
	return m
}()

// terminalNames close a chain without arming a constraint.
var terminalNames = map[string]bool{
	"__":    true,
	"apply": true,
	"done":  true,
}

// Lookup returns the attribute with the given canonical name.
// Unknown names, including the terminal names, return NotAnAttribute.
func Lookup(name string) Attribute {
	if terminalNames[name] {
		return NotAnAttribute
	}
	return attributesByName[name]
}

// Describe returns the canonical name of a, or "" for NotAnAttribute and
// values outside the enumeration.
func Describe(a Attribute) string {
	if a < 0 || int(a) >= len(attributeNames) {
		return ""
	}
	return attributeNames[a]
}

// IsTerminal reports whether name is one of the chain-closing identifiers
// ("done", "apply", "__").
func IsTerminal(name string) bool {
	return terminalNames[name]
}

// Attributes returns every attribute except NotAnAttribute, in declaration order.
func Attributes() []Attribute {
	out := make([]Attribute, 0, len(attributeNames)-1)
	for i := 1; i < len(attributeNames); i++ {
		out = append(out, Attribute(i))
	}
	return out
}

// String returns the canonical name of the attribute.
func (a Attribute) String() string {
	if name := Describe(a); name != "" {
		return name
	}
	return "notAnAttribute"
}

// IsValid reports whether a can appear as the subject of a constraint.
func (a Attribute) IsValid() bool {
	return Describe(a) != ""
}

// IsDimension reports whether a is Width or Height.
func (a Attribute) IsDimension() bool {
	return a == Width || a == Height
}
