// Package correlate joins an alignment script back to the transcripts it was
// computed from.
//
// A Correlator walks the script in order and produces Rows: one Record per
// edit, preceded by a Block the first time a word from a given segment is
// seen on either side. Writers render the rows as delimited text, a table or
// JSON lines.
package correlate
