// Package point defines Point, the non-negative integer a permutation
// group acts on, and Convention, the 0-/1-based conversion layer between
// user-facing literals and the library's internal 0-based points.
package point
