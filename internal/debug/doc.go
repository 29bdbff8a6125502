// Package debug provides optional file-based debug logging.
//
// When the CONSTRAIN_DEBUG environment variable is set to a file path, every
// builder created without an explicit logger writes its emissions and
// warnings to that file. Otherwise logging is a no-op.
package debug
