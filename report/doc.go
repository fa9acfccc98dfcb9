/*
Package report renders the final results of a sweep into the tabular report
format that the surrounding tooling has consumed for years: three columns,
"HostName", "IP", and "Online/Offline", one row per swept target, in
completion order. Reports get written either as CSV (with a UTF-8 BOM, to
keep Excel from guessing encodings) or as a genuine Excel workbook, under a
timestamped ping_results_... filename.

The column headers, the worksheet name, and the filename pattern are frozen
contracts with downstream consumers and therefore live here as constants,
safely out of reach of well-meaning refactorings.
*/
package report
