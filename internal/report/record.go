package report

import (
	"fmt"

	"github.com/grindlemire/go-constrain"
)

// Record is one installed constraint, flattened for output.
type Record struct {
	ID                   string  `json:"id"`
	Container            string  `json:"container"`
	Subject              string  `json:"subject"`
	Attribute            string  `json:"attribute"`
	Relation             string  `json:"relation"`
	Counterpart          string  `json:"counterpart,omitempty"`
	CounterpartAttribute string  `json:"counterpartAttribute,omitempty"`
	Multiplier           float64 `json:"multiplier"`
	Constant             float64 `json:"constant"`

	text string
}

// Collect returns the records of every constraint under roots, grouped by
// container in walk order.
func Collect(roots []*constrain.Element) []Record {
	var out []Record
	for _, root := range roots {
		root.Walk(func(e *constrain.Element) {
			for _, c := range e.Constraints() {
				out = append(out, newRecord(e, c))
			}
		})
	}
	return out
}

func newRecord(container *constrain.Element, c constrain.Constraint) Record {
	r := Record{
		ID:         c.ID,
		Container:  container.Name(),
		Subject:    itemName(c.Subject),
		Attribute:  c.SubjectAttribute.String(),
		Relation:   c.Relation.String(),
		Multiplier: c.Multiplier,
		Constant:   c.Constant,
		text:       c.String(),
	}
	if !c.IsConstant() {
		r.Counterpart = itemName(c.Counterpart)
		r.CounterpartAttribute = c.CounterpartAttribute.String()
	}
	return r
}

func itemName(it constrain.Item) string {
	if s, ok := it.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", it)
}

// Count returns the number of elements and constraints under roots.
func Count(roots []*constrain.Element) (elements, constraints int) {
	for _, root := range roots {
		root.Walk(func(e *constrain.Element) {
			elements++
			constraints += len(e.Constraints())
		})
	}
	return elements, constraints
}
