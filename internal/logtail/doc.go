// Package logtail reads the tail of the session log for the activity view.
//
// # Reading
//
// Read uses a ring buffer of maxLines entries so that only the newest lines
// are kept in memory, whatever the size of the file. Lines come back in file
// order. A missing file is not an error; it yields no lines.
//
// # Entries
//
// The session log is zap JSON, one object per line. Parse splits a line into
// time, level, module and message and keeps every other key in Fields.
// Lines that are not JSON are passed through as a message so nothing is
// hidden from the operator.
//
//	entries, err := logtail.ReadEntries(path, 200)
//	for _, e := range entries {
//		fmt.Println(e.Format())
//	}
//
// Styling is left to the UI.
package logtail
