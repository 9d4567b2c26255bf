// Package logdata loads the tabular records a well log is drawn from.
//
// Three inputs are supported:
//
//   - the bed table, a CSV file with one row per depth interval (lithology,
//     grain size, glaucony content and optional annotations);
//   - the magnetic susceptibility curve, a tab-separated list of
//     height/value pairs;
//   - the paleomagnetic site table, a CSV file of site names with their
//     height, declination and inclination.
//
// Numeric fields are coerced leniently: an empty or malformed value reads
// as zero. A missing file is reported with errors.ErrCodeFileNotFound.
package logdata
