// Package label binds merged source label strings to record associations,
// either as raw strings or as structured class labels resolved through a
// registration-based capability table ("simple", "hierarchical").
package label
