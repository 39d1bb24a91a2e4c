// SPDX-License-Identifier: MIT

package secret_test

import (
	"fmt"

	"github.com/katalvlaran/polysecret/secret"
)

// ExampleReconstruct recovers the constant term of x^2 + 3 from the first
// three of four shares written in bases 10, 2, 10 and 4.
func ExampleReconstruct() {
	in := secret.Input{
		Meta: &secret.Metadata{N: 4, K: 3},
		Shares: []secret.Share{
			{Key: "1", Base: "10", Value: "4"},
			{Key: "2", Base: "2", Value: "111"},
			{Key: "3", Base: "10", Value: "12"},
			{Key: "6", Base: "4", Value: "213"},
		},
	}
	res, err := secret.Reconstruct(in, secret.WithVerify())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("secret:", res.Secret)
	fmt.Println("used:", len(res.Used), "verified:", len(res.Unused))

	// Output:
	// secret: 3
	// used: 3 verified: 1
}

// ExampleSplit produces hexadecimal shares of 1234 + 5x.
func ExampleSplit() {
	in, err := secret.Split([]int64{1234, 5}, []int{1, 2, 3}, 16)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range in.Shares {
		fmt.Printf("%s: %s\n", s.Key, s.Value)
	}
	v, _ := secret.Secret(in)
	fmt.Println("secret:", v)

	// Output:
	// 1: 4d7
	// 2: 4dc
	// 3: 4e1
	// secret: 1234
}
