// Command mibparse parses SNMP SMI MIB files and inspects the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mibparse: %v\n", err)
		os.Exit(1)
	}
}
