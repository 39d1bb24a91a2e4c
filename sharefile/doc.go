// SPDX-License-Identifier: MIT

// Package sharefile reads and writes share documents.
//
// A share document is a mapping with one metadata entry, "keys", holding the
// required (k) and available (n) share counts, and one entry per share keyed
// by its decimal x-coordinate:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2",  "value": "111"},
//	  "3": {"base": "10", "value": "12"},
//	  "6": {"base": "4",  "value": "213"}
//	}
//
// Bases may be strings or numbers. Both JSON and YAML are accepted; shares
// always come out ordered by SortShares, so "the first k shares" means the k
// smallest integer keys regardless of how the document was written.
package sharefile
