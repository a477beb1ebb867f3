// Package series provides the tabular data model consumed by decimate.
//
// A Table is an ordered set of equal-length columns ("dimensions"). The first dimension
// holds the x values and the second the y values; further dimensions ride along and are
// carried through row selection. Frame is the in-memory Table implementation.
//
// Tables are immutable: SliceX and SelectRows return new tables and never modify the
// receiver.
package series
