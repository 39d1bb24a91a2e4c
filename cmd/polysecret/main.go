// SPDX-License-Identifier: MIT

// Command polysecret recovers secrets hidden as the constant term of a
// polynomial from base-encoded shares, and generates such shares.
//
//	polysecret solve shares.json other.yaml
//	polysecret split --secret 1234 --coeffs 5,7 --xs 1,2,3,4 --base 16
//	polysecret prompt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
