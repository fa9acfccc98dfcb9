/*
Package hostlist loads plain-text lists of sweep targets, one host name or IP
address literal per line. It is deliberately forgiving about the typical
real-world state of such lists: stray whitespace, blank lines, byte order
marks, and even UTF-16 encodings courtesy of Windows tooling.
*/
package hostlist
