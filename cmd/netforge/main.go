// Command netforge generates random networks from the command line and
// prints their structural summary.
//
//	netforge generate --model ws --nodes 100 --degree 2 --p 0.1 --seed 42
//	netforge generate --config netforge.yaml --format text --print-links
//	netforge models
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
