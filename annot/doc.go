// Package annot models annotation values attached to a genomic locus.
//
// Values are small tagged unions (text, float, integer) and a Records is
// a single ordered sequence of (source, values) entries. The tagged
// representation replaces parallel per-kind sequences so that a source id
// cannot appear with inconsistent typing; ValuesOf/Texts/Floats/Ints
// reconstruct the per-kind views for consumers that want them.
//
// Interned string codes travel as integer values (see the intern
// package); a code is only meaningful relative to the interner instance
// that produced it.
package annot
