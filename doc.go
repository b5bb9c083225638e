/*
Package bitset implements a fixed-size bit set packed into 64-bit words, with
set algebra and a bidirectional bit cursor.

	b := bitset.FromBools(true, false, false, true) // [4]{1001}
	b.Set(1, true)                                  // [4]{1101}
	b.Set(-1, false)                                // [4]{1100}
	c := bitset.Not(b)                              // [4]{0011}
	b.InPlaceOr(c)                                  // [4]{1111}
	b.Resize(6)                                     // [6]{111100}

Binary operations always produce a result with the size of the left operand;
a right operand of a different size is truncated or zero-extended first.
*/
package bitset
