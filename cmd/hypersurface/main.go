// Command hypersurface inspects k-skeletons of hypercubes and runs the
// bundled wave and life simulations on them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, nil).root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
