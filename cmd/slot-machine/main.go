// Command slot-machine resolves sampler tags in slot documents.
//
// Usage:
//
//	slot-machine [-v] sample [-n N] [-seed S] [files]
//	slot-machine check [files]
//	slot-machine tags
//
// A file argument of "-", or no file at all, reads standard input.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
