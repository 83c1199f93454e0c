// Package srp illustrates the Single Responsibility Principle.
//
// [Report] both builds and persists itself, so it has two reasons to change.
// [ReportGenerator] and [ReportSaver] split those jobs apart; each exposes a
// single operation.
package srp
