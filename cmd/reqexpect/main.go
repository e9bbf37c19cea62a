// reqexpect CLI - match HTTP-style requests against expectation rule files.
package main

import (
	"os"

	"github.com/getmockd/reqexpect/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
