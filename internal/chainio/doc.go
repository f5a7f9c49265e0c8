// Package chainio reads per-chain CSV draw files and writes long and summary
// tables as CSV or YAML.
//
// A chain file has one header row of parameter names followed by one row per
// iteration. Lines starting with '#' are skipped, so sampler output with
// comment blocks can be read directly. Cells "NA", "NaN" and "" are read as
// missing values and later rejected by samples.New.
//
// Paths ending in ".gz" or ".zst" are transparently decompressed on read and
// compressed on write.
package chainio
