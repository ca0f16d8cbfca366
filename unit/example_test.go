package unit_test

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

func ExampleQuantity_In() {
	meters := unit.MustNew("m", dimension.Length)
	centimeters := unit.Must(meters.WithSiPrefix(unit.Centi))

	q, _ := meters.Of(1.25).In(centimeters)
	fmt.Println(q)
	// Output: 125cm
}

func ExampleUnit_WithOffset() {
	kelvin := unit.MustNew("K", dimension.Temperature)
	celsius := kelvin.WithOffset(-273.15).WithSymbol("°C")

	boiling, _ := celsius.Of(100).In(kelvin)
	fmt.Println(boiling)
	// Output: 373.15K
}

func ExampleQuantity_Per() {
	meters := unit.MustNew("m", dimension.Length)
	seconds := unit.MustNew("s", dimension.Time)

	speed, _ := meters.Of(5).Per(seconds.Of(2))
	fmt.Println(speed, speed.Dimension())
	// Output: 2.5m/s {length: 1, time: -1}
}

func ExampleQuantity_Times() {
	ratio := unit.MustNew("", dimension.One)
	percent := unit.Must(ratio.TimesScalar(0.01)).WithSymbol("%")
	meters := unit.MustNew("m", dimension.Length)

	q, _ := percent.Of(50).Times(meters.Of(10))
	fmt.Println(q)
	// Output: 5m
}

func ExampleUnit_Times() {
	kelvin := unit.MustNew("K", dimension.Temperature)
	meters := unit.MustNew("m", dimension.Length)

	_, err := kelvin.WithOffset(-273.15).Times(meters)
	fmt.Println(err != nil)
	// Output: true
}
