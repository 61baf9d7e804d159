// Package transversal implements the coset-representative table for one
// base point (§4.E): for every α in the orbit of β, a representative
// u(α) with β·u(α) = α, and its inverse uInv(α). Construction maintains
// the table by the same two-phase update rule orbit uses, and supports
// conjugating the whole table by a chain element for base change.
package transversal
