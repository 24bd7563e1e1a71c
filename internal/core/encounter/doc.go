// Package encounter computes encounter experience budgets for a party.
//
// A budget is the sum of one XP threshold per adventurer, looked up by the
// adventurer's level in the threshold sequence of a difficulty tier. The
// package parses raw level and difficulty input, sums thresholds, and renders
// the per-tier outcome text. Threshold data is supplied through the Table
// interface; see package table for the bundled and file-backed sources.
package encounter
