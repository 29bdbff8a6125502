package script

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-constrain"
)

// Result is the element tree a document produced.
type Result struct {
	// Roots are the parentless elements, in declaration order.
	Roots []*constrain.Element
	// Elements indexes every element by name.
	Elements map[string]*constrain.Element
	// Installed counts the constraints installed across the tree.
	Installed int
}

// Options configures Run.
type Options struct {
	// Logger receives progress and builder logs. Nil uses the builder default.
	Logger *log.Logger
}

// Validate checks a document without building anything. Every problem is
// reported, joined into one error.
func Validate(doc *Document) error {
	var errs []error
	declared := make(map[string]bool, len(doc.Elements))

	for i, el := range doc.Elements {
		switch {
		case el.Name == "":
			errs = append(errs, constrain.NewError(constrain.ErrCodeInvalidDocument, "element %d has no name", i))
		case declared[el.Name]:
			errs = append(errs, constrain.NewError(constrain.ErrCodeInvalidDocument, "element %q declared twice", el.Name))
		}
		declared[el.Name] = true
	}
	for _, el := range doc.Elements {
		if el.Parent != "" && !declared[el.Parent] {
			errs = append(errs, constrain.NewError(constrain.ErrCodeUnknownElement, "element %q has unknown parent %q", el.Name, el.Parent))
		}
	}

	for i, g := range doc.Groups {
		if g.Subject == "" {
			errs = append(errs, constrain.NewError(constrain.ErrCodeInvalidDocument, "group %d has no subject", i))
		}
		for _, ref := range []string{g.Subject, g.Authority, g.Container} {
			if ref != "" && !declared[ref] {
				errs = append(errs, constrain.NewError(constrain.ErrCodeUnknownElement, "group %d references unknown element %q", i, ref))
			}
		}
		for j, s := range g.Steps {
			if _, err := resolve(s); err != nil {
				errs = append(errs, constrain.WrapError(constrain.ErrCodeInvalidDocument, err, "group %d step %d", i, j))
			}
		}
	}
	return errors.Join(errs...)
}

// Run validates doc, builds its element tree and applies every group.
// Emission errors of all groups are joined; the tree built so far is
// returned alongside them.
func Run(doc *Document, opts Options) (*Result, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	res, err := buildTree(doc, opts)
	if err != nil {
		return nil, err
	}

	var errs []error
	for i, g := range doc.Groups {
		if err := runGroup(doc, i, g, res, opts); err != nil {
			errs = append(errs, fmt.Errorf("group %d (%s): %w", i, g.Subject, err))
		}
	}

	for _, root := range res.Roots {
		root.Walk(func(e *constrain.Element) {
			res.Installed += len(e.Constraints())
		})
	}
	if opts.Logger != nil {
		opts.Logger.Debug("document applied", "source", doc.Source, "elements", len(res.Elements), "constraints", res.Installed)
	}
	return res, errors.Join(errs...)
}

func buildTree(doc *Document, opts Options) (*Result, error) {
	var eopts []constrain.ElementOption
	if opts.Logger != nil {
		// Every element carries the hook; only the current root's fires.
		eopts = append(eopts, constrain.WithOnChildAdded(func(child *constrain.Element) {
			opts.Logger.Debug("element nested", "element", child.Name(), "parent", child.Parent().Name())
		}))
	}

	res := &Result{Elements: make(map[string]*constrain.Element, len(doc.Elements))}
	for _, spec := range doc.Elements {
		res.Elements[spec.Name] = constrain.NewElement(spec.Name, eopts...)
	}
	for _, spec := range doc.Elements {
		if spec.Parent == "" {
			continue
		}
		child, parent := res.Elements[spec.Name], res.Elements[spec.Parent]
		if child.Contains(parent) {
			return nil, constrain.NewError(constrain.ErrCodeInvalidDocument, "element %q cannot be nested inside its own descendant %q", spec.Name, spec.Parent)
		}
		parent.AddChild(child)
	}
	for _, spec := range doc.Elements {
		if spec.Parent == "" {
			res.Roots = append(res.Roots, res.Elements[spec.Name])
		}
	}
	return res, nil
}

func runGroup(doc *Document, i int, g Group, res *Result, opts Options) error {
	bopts := []constrain.Option{
		// Documents have no call site; the group ordinal stands in for the line.
		constrain.WithLocation(constrain.Location{File: doc.Source, Function: "group", Line: i + 1}),
	}
	if g.Authority != "" {
		bopts = append(bopts, constrain.WithAuthority(res.Elements[g.Authority]))
	}
	if g.Container != "" {
		bopts = append(bopts, constrain.WithContainer(res.Elements[g.Container]))
	}
	if opts.Logger != nil {
		bopts = append(bopts, constrain.WithLogger(opts.Logger))
	}

	b := constrain.New(res.Elements[g.Subject], bopts...)
	for _, s := range g.Steps {
		apply, err := resolve(s)
		if err != nil {
			// Validate already rejected these.
			return err
		}
		apply(b, s)
	}
	return b.Done()
}
