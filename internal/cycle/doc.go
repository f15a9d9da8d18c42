// Package cycle owns the sexagenary day-cycle engine.
//
// Ownership boundary:
// - anchor and symbol table shapes plus load-time validation
// - nearest-anchor resolution and modular offset arithmetic
// - stem/branch classification lookups and the composed day designation
package cycle
