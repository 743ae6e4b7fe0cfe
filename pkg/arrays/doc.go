/*
Package arrays provides small helpers over slices: evenly stepped ranges, chunking,
min/max scans, trimmed sets, grouping and in-place replacement.

Preconditions that would otherwise produce NaN sequences, empty reads or endless loops
(fewer than two steps, a chunk size below one, an empty slice) are reported as errors.
*/
package arrays
