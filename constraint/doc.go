// Package constraint evaluates architectural rules — cycle-freedom and
// layering — against a single slicing's projection and reports the
// offending edges as violations.
package constraint
