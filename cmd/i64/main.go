// Command i64 evaluates and converts 64-bit wraparound integers.
package main

import (
	"os"

	"github.com/govalues/i64/internal/logging"
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	_ = logging.Sync()
	if err != nil {
		_ = logging.Errorf("%v", err)
		os.Exit(1)
	}
}
