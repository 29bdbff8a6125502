// Package constrain builds linear layout constraints with a fluent chain.
//
// A constraint relates one attribute of a subject item to an attribute of a
// counterpart item:
//
//	subject.attr <relation> multiplier * counterpart.attr + constant
//
// A [Builder] turns a chain of short calls into a sequence of such
// constraints and installs each one on its container through [Item]. The
// layout engine behind Item is opaque; [Element] is a reference
// implementation that records constraints in a tree.
//
//	root := constrain.NewElement("root")
//	card := constrain.NewElement("card")
//	root.AddChild(card)
//
//	err := constrain.New(card, constrain.WithAuthority(root)).
//		InsetStatic(8).
//		Height(120).
//		Done()
//
// Every chain must end with Apply or Done. The last armed constraint is
// emitted by the next arming call or by a terminal call, never implicitly.
package constrain
