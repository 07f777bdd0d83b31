// Package logger provides the two loggers the table pagination core writes
// to: one for the decisions the driver makes while laying out a table, one
// for degenerate-input fallbacks that are handled silently but are still
// worth surfacing.
package logger

import (
	"log"
	"os"
)

// ProgressLogger traces the Pagination Driver's path decisions: monolithic
// vs. split, column advances, header repetition.
var ProgressLogger = log.New(os.Stdout, "table.progress: ", log.LstdFlags)

// WarningLogger fires on documented-default fallbacks: a NaN/Inf table
// indent coerced to 0, a forced over-tall split, header suppression because
// the headers don't fit the available height.
var WarningLogger = log.New(os.Stdout, "table.warning: ", log.Lmsgprefix)
