// Command stephen is a thin CLI front-end over the stephen engine: it
// loads a presentation from an HCL file via internal/config, drives a
// completion, and answers membership, left-factor and enumeration
// queries. Deliberately outside the core: neither the stephen nor
// presentation package imports this one or vice versa. Grounded on
// cockroach's cli package shape (package-level *cobra.Command values,
// RunE, SilenceUsage) and gopherjs's cobra+pflag dependency pair.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
