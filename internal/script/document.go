package script

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-constrain"
)

// Format is the encoding of a layout document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Document is a decoded layout document.
type Document struct {
	Elements []ElementSpec `toml:"element" yaml:"elements"`
	Groups   []Group       `toml:"group" yaml:"groups"`

	// Source names where the document came from; it becomes the file part of
	// every constraint ID.
	Source string `toml:"-" yaml:"-"`
}

// ElementSpec declares one element. An empty Parent makes it a root.
type ElementSpec struct {
	Name   string `toml:"name" yaml:"name"`
	Parent string `toml:"parent" yaml:"parent"`
}

// Group opens one builder and applies Steps to it in order.
type Group struct {
	Subject   string `toml:"subject" yaml:"subject"`
	Authority string `toml:"authority" yaml:"authority"`
	Container string `toml:"container" yaml:"container"`
	Steps     []Step `toml:"step" yaml:"steps"`
}

// Step is one builder call.
type Step struct {
	Op       string    `toml:"op" yaml:"op"`
	Value    *float64  `toml:"value" yaml:"value"`
	Values   []float64 `toml:"values" yaml:"values"`
	Attrs    []string  `toml:"attrs" yaml:"attrs"`
	Relation string    `toml:"relation" yaml:"relation"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, constrain.NewError(constrain.ErrCodeInvalidDocument, "unsupported document extension %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}
	doc.Source = path
	return doc, nil
}

// Decode parses a document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, constrain.WrapError(constrain.ErrCodeInvalidDocument, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, constrain.NewError(constrain.ErrCodeInvalidDocument, "decode toml: unknown keys %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, constrain.WrapError(constrain.ErrCodeInvalidDocument, err, "decode yaml")
		}
	default:
		return nil, constrain.NewError(constrain.ErrCodeInvalidDocument, "unknown format %q", format)
	}
	return &doc, nil
}
