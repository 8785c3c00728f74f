// Package normalize provides invertible per-representation transforms and
// the chain that applies them across composite records.
//
// A Normalization fits its parameters on the first Normalize call and must
// be paired with Restore on the same fitted instance. The Chain owns one
// Normalization per representation, fits lazily on first use, and preserves
// record identity through normalize and restore.
//
// Concrete normalizations are looked up through a registration-based
// capability table keyed by stable string identifiers ("minmax", "zscore",
// "identity").
package normalize
