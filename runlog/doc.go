/*
Package runlog maintains the user-visible log of sweep runs: a plain text
file of lines in the fixed format

	2006-01-02 15:04:05 - some message

that operators grep, tail, and archive. The log prunes itself: on every
append, lines older than the retention window (one week, unless configured
otherwise) silently fall off the top, so the file never needs external log
rotation. Lines that don't parse as log lines are treated as expired, too.

This is decidedly not the place for diagnostic logging; that is what package
logging is for. The run log format is a long-standing contract with the
scripts sitting downstream of it, which is why it is string surgery on a text
file here instead of yet another structured logging backend.
*/
package runlog
