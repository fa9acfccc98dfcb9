// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"
)

func main() {
	// Deviating from the stock cobra boilerplate, there's no fmt.Println(err)
	// here: Execute has already reported the error and printing it again just
	// renders it twice, see https://github.com/spf13/cobra/issues/304.
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

// For CLI unit tests...
var osExit = os.Exit
