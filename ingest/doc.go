// Package ingest defines the inbound contract between an external class
// reader and the dependency graph: a [Source] walks whatever it reads
// (a classpath directory, a jar, a test fixture) and reports every visited
// class and every reference it finds to a [Visitor].
package ingest
