package constrain

import (
	"errors"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-constrain/internal/debug"
)

// Builder accumulates one constraint at a time from a chain of calls.
//
// A builder is Idle until an arming call (Set, Fix, Link and the shorthands
// built on them) configures a constraint. Every arming call first emits the
// constraint armed before it, so one chain describes any number of
// constraints:
//
//	constrain.New(card, constrain.WithAuthority(root)).
//		Align(constrain.Width, constrain.Height).
//		Done()
//
// The last armed constraint is only emitted by a terminal call (Apply or
// Done). A chain that stops without one silently drops it; the builder logs a
// warning when it is garbage collected in that state, but never emits.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	subject Item

	// Captured once by New; the current fields reset to these after each emission.
	defaultCounterpart Item
	defaultContainer   Item

	counterpart     Item
	container       Item
	subjectAttr     Attribute
	counterpartAttr Attribute
	relation        Relation
	multiplier      float64
	constant        float64
	description     string
	active          bool

	location    string
	locationSet bool
	logger      *log.Logger

	errs  []error
	guard *armGuard
}

// New creates an Idle builder constraining subject.
//
// The counterpart of each constraint defaults to the authority given with
// WithAuthority, or to subject itself. The container defaults to the one given
// with WithContainer. Without it, if an authority was given and the items
// implement Nested, the container is the nearest item that is subject or
// authority or contains both; failing that it is the authority, and with no
// authority it is subject.
func New(subject Item, opts ...Option) *Builder {
	b := &Builder{subject: subject}
	for _, opt := range opts {
		opt(b)
	}

	hasAuthority := b.defaultCounterpart != nil
	if !hasAuthority {
		b.defaultCounterpart = subject
	}
	if b.defaultContainer == nil {
		b.defaultContainer = b.defaultCounterpart
		if hasAuthority {
			if c := commonContainer(subject, b.defaultCounterpart); c != nil {
				b.defaultContainer = c
			}
		}
	}
	if b.logger == nil {
		b.logger = debug.Logger()
	}
	if !b.locationSet {
		b.location = Caller(1).String()
	}

	b.guard = &armGuard{logger: b.logger}
	runtime.AddCleanup(b, (*armGuard).warnIfArmed, b.guard)

	b.reset()
	return b
}

// Subject returns the item every constraint of this builder restricts.
func (b *Builder) Subject() Item {
	return b.subject
}

// Authority returns the default counterpart item.
func (b *Builder) Authority() Item {
	return b.defaultCounterpart
}

// Container returns the default container item.
func (b *Builder) Container() Item {
	return b.defaultContainer
}

// Pending reports whether a constraint is armed and waiting for the next
// arming or terminal call.
func (b *Builder) Pending() bool {
	return b.active
}

// Err returns the emission errors collected since the last Done.
// A single error is returned as the engine or builder produced it.
func (b *Builder) Err() error {
	switch len(b.errs) {
	case 0:
		return nil
	case 1:
		return b.errs[0]
	default:
		return errors.Join(b.errs...)
	}
}

// Apply emits the armed constraint, if any, and arms nothing.
// It closes a chain while keeping it chainable.
func (b *Builder) Apply() *Builder {
	b.finalize()
	return b
}

// Done emits the armed constraint, if any, and returns every emission error
// collected since the previous Done.
func (b *Builder) Done() error {
	b.finalize()
	err := b.Err()
	b.errs = nil
	return err
}

// finalize emits the armed constraint and returns to Idle, whatever the
// outcome of the emission.
func (b *Builder) finalize() {
	if !b.active {
		return
	}
	if err := b.emit(); err != nil {
		b.errs = append(b.errs, err)
	}
	b.reset()
}

func (b *Builder) reset() {
	b.counterpart = b.defaultCounterpart
	b.container = b.defaultContainer
	b.subjectAttr = NotAnAttribute
	b.counterpartAttr = NotAnAttribute
	b.relation = Equal
	b.multiplier = 1
	b.constant = 0
	b.description = ""
	b.active = false
	b.guard.armed = false
}

func (b *Builder) arm() {
	b.active = true
	b.guard.armed = true
	b.guard.id = b.location + b.description
}

// armGuard outlives its Builder long enough to report a dropped constraint.
type armGuard struct {
	armed  bool
	id     string
	logger *log.Logger
}

func (g *armGuard) warnIfArmed() {
	if g.armed {
		g.logger.Warn("builder collected with an armed constraint; call Apply or Done to emit it", "id", g.id)
	}
}

func commonContainer(subject, authority Item) Item {
	var lineage []Item
	for it := subject; it != nil; it = ownerOf(it) {
		lineage = append(lineage, it)
	}
	for it := authority; it != nil; it = ownerOf(it) {
		for _, s := range lineage {
			if s == it {
				return it
			}
		}
	}
	return nil
}

func ownerOf(it Item) Item {
	if n, ok := it.(Nested); ok {
		return n.Owner()
	}
	return nil
}
