package arithmetic_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvunits/arithmetic"
)

func ExampleDecimal() {
	d := arithmetic.Decimal{}
	tenth, _ := d.FromNative(0.1)
	three, _ := d.FromNative(3)

	fmt.Println(d.Mul(tenth, three))

	_, err := d.Div(three, d.Sub(three, three))
	fmt.Println(errors.Is(err, arithmetic.ErrDivisionByZero))
	// Output:
	// 0.300000000000000000
	// true
}

func ExampleBigFloat_Pow() {
	b := arithmetic.BigFloat{}
	ten, _ := b.FromNative(10)
	exp, _ := b.FromNative(-3)

	milli, _ := b.Pow(ten, exp)
	fmt.Println(milli.Text('e', 5), milli.Prec())
	// Output: 1.00000e-03 113
}
