package numeral_test

import (
	"fmt"

	"github.com/louisbranch/arithmos/numeral"
)

func ExampleEncode() {
	upper, _ := numeral.Encode(616, numeral.Upper)
	lower, _ := numeral.Encode(616, numeral.Lower)
	fmt.Println(upper)
	fmt.Println(lower)
	// Output:
	// ΧΙϜ'
	// χιϝ'
}

func ExampleDecode() {
	value, err := numeral.Decode("͵Μ͵ΘϠϘΘ'")
	fmt.Println(value, err)
	_, err = numeral.Decode("not a numeral")
	fmt.Println(err)
	// Output:
	// 49999 <nil>
	// parse greek numeral "not a numeral" at offset 13: missing terminating prime
}

func ExampleNew() {
	n, err := numeral.New(42)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n, n.Value())
	// Output: ΜΒ' 42
}
