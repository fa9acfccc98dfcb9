// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	onlineStyle  = termenv.Style{}.Foreground(termenv.ANSIGreen)
	offlineStyle = termenv.Style{}.Foreground(termenv.ANSIRed)
	badHostStyle = termenv.Style{}.Foreground(termenv.ANSIMagenta)
	timeoutStyle = termenv.Style{}.Foreground(termenv.ANSIYellow)
)

var totalStyle = termenv.Style{}.Bold()
