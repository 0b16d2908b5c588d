// Package report renders constraint.Violation values into the stable
// textual form external tooling consumes: one line per violation,
// "constraintId: shortDescription: from -> to (, from -> to)*".
package report
