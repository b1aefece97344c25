// Command statsctl runs one-off lookups against the same cached, rate-limited
// services the HTTP proxy uses, or starts the proxy itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
