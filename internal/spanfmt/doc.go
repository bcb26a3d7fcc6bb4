// Package spanfmt renders suppression records for people (aligned, colored
// text) and machines (JSON). It never feeds back into the engine.
package spanfmt
