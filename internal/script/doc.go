// Package script loads layout documents and runs them through constraint
// builders.
//
// A document declares a tree of named elements and a list of constraint
// groups. Each group opens one builder (subject, optional authority and
// container) and applies its steps in order; a step names an attribute, a
// modifier, a composition or a terminal:
//
//	[[element]]
//	name = "root"
//
//	[[element]]
//	name = "card"
//	parent = "root"
//
//	[[group]]
//	subject = "card"
//	authority = "root"
//
//	  [[group.step]]
//	  op = "insetStatic"
//	  value = 8
//
// The same document can be written in YAML with "elements", "groups" and
// "steps" keys.
package script
