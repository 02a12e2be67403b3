// Command budget is the scripting front end: it records transactions, prints
// month and week summaries, writes reports and issues API tokens.
package main

import (
	"os"
)

func main() {
	if err := runCLI(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
