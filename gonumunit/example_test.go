package gonumunit_test

import (
	"fmt"

	"github.com/katalvlaran/lvunits/gonumunit"
	"github.com/katalvlaran/lvunits/si"
	gounit "gonum.org/v1/gonum/unit"
)

func ExampleToGonum() {
	g, err := gonumunit.ToGonum(si.KilometersPerHour.Of(36))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f %v\n", g.Value(), gounit.DimensionsMatch(g, gounit.New(1, gounit.Dimensions{gounit.LengthDim: 1, gounit.TimeDim: -1})))
	// Output: 10.0 true
}

func ExampleFromGonum() {
	q, err := gonumunit.FromGonum(gounit.Length(1609.344), si.Miles)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q)
	// Output: 1mi
}
