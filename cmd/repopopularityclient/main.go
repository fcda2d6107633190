// Package main implements grpc client that can be used for querying repopopularity server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(dialServer).Execute(); err != nil {
		os.Exit(1)
	}
}
