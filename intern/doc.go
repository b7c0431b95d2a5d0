// Package intern provides a growth-only mapping between string values
// and dense int32 codes.
//
// Annotation datasets repeat the same strings (gene symbols, consequence
// terms, transcript ids) millions of times. Storing a code instead of the
// string keeps records small and makes equality checks cheap; the shared
// Interner resolves codes back to text at report time.
package intern
