package constrain

import "github.com/charmbracelet/log"

// Option configures a Builder.
type Option func(*Builder)

// WithAuthority sets the default counterpart item. Without it the subject is
// its own counterpart.
func WithAuthority(authority Item) Option {
	return func(b *Builder) {
		b.defaultCounterpart = authority
	}
}

// WithContainer sets the item that installs every constraint the builder
// emits. Without it the builder picks one, see New.
func WithContainer(container Item) Option {
	return func(b *Builder) {
		b.defaultContainer = container
	}
}

// WithLogger routes emission logs and warnings to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithLocation overrides the call site recorded in constraint IDs.
func WithLocation(loc Location) Option {
	return func(b *Builder) {
		b.location = loc.String()
		b.locationSet = true
	}
}
