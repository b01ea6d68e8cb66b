// main is the entry point for the ticketdash CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ticketdash/ticketdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
