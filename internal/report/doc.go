// Package report renders resolution output for people and for tools.
//
// Text output is laid out by hand and coloured when writing to a terminal.
// JSON and YAML output use the serializable views of each value, so the two
// machine formats always carry the same fields.
package report
