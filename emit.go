package constrain

// emit installs the armed constraint on the current container.
// Builder-side validation failures never reach the engine; engine errors are
// returned as is.
func (b *Builder) emit() error {
	id := b.location + b.description

	switch {
	case b.subject == nil:
		return NewError(ErrCodeInvalidConstraint, "no subject item (%s)", id)
	case !b.subjectAttr.IsValid():
		return NewError(ErrCodeInvalidConstraint, "no attribute configured (%s)", id)
	case b.container == nil:
		return NewError(ErrCodeInvalidConstraint, "no container item (%s)", id)
	case b.counterpart == nil && b.counterpartAttr != NotAnAttribute:
		return NewError(ErrCodeInvalidConstraint, "counterpart attribute %s without a counterpart item (%s)", b.counterpartAttr, id)
	case b.counterpart != nil && !b.counterpartAttr.IsValid():
		return NewError(ErrCodeInvalidConstraint, "no counterpart attribute configured (%s)", id)
	}

	c := Constraint{
		Subject:              b.subject,
		SubjectAttribute:     b.subjectAttr,
		Relation:             b.relation,
		Counterpart:          b.counterpart,
		CounterpartAttribute: b.counterpartAttr,
		Multiplier:           b.multiplier,
		Constant:             b.constant,
		ID:                   id,
	}

	if err := b.container.AddConstraint(c); err != nil {
		b.logger.Debug("constraint rejected", "id", id, "err", err)
		return err
	}
	b.logger.Debug("constraint installed", "id", id, "constraint", c.String())
	return nil
}
