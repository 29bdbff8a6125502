package constrain

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Location is a call site, used to tag constraints for debugging.
type Location struct {
	File     string
	Function string
	Line     int
}

// Caller returns the location of the function skip frames above the caller
// of Caller. Caller(0) is the function that called Caller.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// String formats the location with FormatLocation.
func (l Location) String() string {
	if l == (Location{}) {
		return ""
	}
	return FormatLocation(l.File, l.Function, l.Line)
}

// FormatLocation renders a call site as "::file::function::line::".
//
// The file loses its directory and extension. The function loses its package
// path, its package qualifier and any trailing parameter list, so
// "github.com/x/y.(*T).Run" becomes "(*T).Run" and "layout(_:)" becomes "layout".
func FormatLocation(file, function string, line int) string {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(trimFile(file))
	b.WriteString("::")
	b.WriteString(trimFunction(function))
	b.WriteString("::")
	b.WriteString(strconv.Itoa(line))
	b.WriteString("::")
	return b.String()
}

func trimFile(file string) string {
	base := filepath.Base(filepath.ToSlash(file))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func trimFunction(function string) string {
	if i := strings.LastIndex(function, "/"); i >= 0 {
		function = function[i+1:]
	}
	// Package qualifier: "pkg.Func" or "pkg.(*T).Method".
	head := function
	if p := strings.Index(function, "("); p >= 0 {
		head = function[:p]
	}
	if i := strings.Index(head, "."); i > 0 {
		function = function[i+1:]
	}
	// Trailing parameter list, but not a receiver like "(*T)".
	if strings.HasSuffix(function, ")") {
		if i := strings.LastIndex(function, "("); i > 0 {
			function = function[:i]
		}
	}
	return function
}
