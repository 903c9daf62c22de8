// SPDX-License-Identifier: MIT

// Command sparsebench times diagonal × sparse products under several
// assignment idioms and prints one report block per idiom.
//
// Usage:
//
//	sparsebench                               # 300000×300000, 1000 steps, all idioms
//	sparsebench --size 30000 --idiom inplace --idiom temp-swap
//	sparsebench --plan plan.yaml --seed 0     # seed 0 draws the seed from the clock
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatalf("sparsebench: %v", err)
	}
}
