package jsonedges

import "errors"

// ErrEmptySource is returned when NewAdapter is given empty data.
var ErrEmptySource = errors.New("jsonedges: empty source data")

// ErrSourceNotFound is returned by NewFileSource when the path does not exist
// or cannot be read.
var ErrSourceNotFound = errors.New("jsonedges: source file not found")

// ErrMalformedSource is returned when the data is not valid JSON(C), or does
// not match the expected edge-list shape.
var ErrMalformedSource = errors.New("jsonedges: malformed source data")

// ErrEmptyClassName is returned when a fixture entry has an empty class name.
var ErrEmptyClassName = errors.New("jsonedges: empty class name in fixture entry")
