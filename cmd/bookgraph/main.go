// SPDX-License-Identifier: MIT

// Command bookgraph loads a library dataset, builds the reader affinity graph
// and answers queries on it.
//
//	bookgraph load      --data library.yaml
//	bookgraph graph     --data library.yaml
//	bookgraph path      ana carla --data library.yaml
//	bookgraph clusters  --data library.yaml
//	bookgraph friends   ana --data library.yaml
//	bookgraph top       -n 5 --data library.yaml
//	bookgraph recommend ana -n 10 --data library.yaml --json
//	bookgraph generate  --readers 500 --seed 7 > synthetic.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bookgraph:", err)
		os.Exit(1)
	}
}
