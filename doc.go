// Package table implements the pagination core for Word-compatible table
// layout: given a measured table and a paginator exposing page/column
// geometry, it produces an ordered sequence of TableFragment values
// describing where each slice of the table lands on the page.
//
// The core never touches text shaping, font metrics or rendering; it
// consumes line heights that were already measured upstream and only
// decides where a table may break: between rows, or mid-row on a line
// boundary when a row does not fit whole.
package table
