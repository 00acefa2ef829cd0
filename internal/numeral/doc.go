// Package numeral defines the vocabulary for classifying numeric literals
// by their textual form.
//
// A literal belongs to exactly one of six families, deduced from the raw
// source text alone: base prefixes first, float markers second, decimal as
// the catch-all. The package also owns the group-width table, the per-family
// number of digits a separator-delimited group must have.
package numeral
