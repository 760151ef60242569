// Command acotour builds single-ant ACO tours over TSP problem files.
//
//	acotour generate --kind circle --nodes 12 --out circle.yaml
//	acotour tour --instance circle.yaml --seed 7 --deposit
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
