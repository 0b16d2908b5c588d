package ingest

import "context"

// Visitor receives the classes and references a Source discovers. Class
// names use dot-separated fully-qualified form (com.example.Foo), with $
// for nested classes.
type Visitor interface {
	// Categorize records that className was visited, independent of any
	// reference it participates in.
	Categorize(ctx context.Context, className string) error
	// Connect records a reference from fromClassName to toClassName.
	Connect(ctx context.Context, fromClassName, toClassName string) error
}

// Source walks a body of compiled classes (a classpath directory, a jar, a
// test fixture) and reports what it finds to v. Walk returns a non-nil
// error only for a fatal I/O or format failure; a malformed individual
// entry that a Source chooses to skip is not an error.
type Source interface {
	Walk(ctx context.Context, v Visitor) error
}
