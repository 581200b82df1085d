// Package hdrhistogram implements Gil Tene's High Dynamic Range Histogram:
// a fixed-footprint, constant-time data structure that records positive
// integer values across a configurable range while preserving a bounded
// relative error (a chosen number of significant decimal digits) at
// every magnitude.
//
// A Histogram is built with New, given the smallest and largest values
// it needs to distinguish and the number of significant decimal digits
// of precision to preserve. Values are recorded with Record,
// RecordValues or RecordCorrectedValue; the last compensates for
// coordinated omission by synthesizing the intermediate samples a
// stalled recorder would have missed. Recorded distributions are read
// back through the query methods (Mean, StdDev, ValueAtPercentile, ...)
// or walked with one of the five iterators (RecordedValues, AllValues,
// LinearBucketValues, LogarithmicBucketValues, Percentiles).
//
// Three concurrency variants are available: the default Histogram is
// unsynchronized and expects a single writer; WithAtomicCounts
// selects a lock-free counts store safe for concurrent recording from
// any number of writers; Synchronized wraps a Histogram with a mutex
// for callers that also need synchronized Add/Subtract/Copy/Encode.
//
// Histograms can be merged (Add, Subtract), deep-copied (Copy,
// CopyInto) and serialized to a compact wire format (Encode,
// EncodeCompressed, Decode, DecodeCompressed) compatible with other
// HDR Histogram implementations' interchange format.
package hdrhistogram
