// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fraction

import (
	"fmt"
)

func ExampleFraction() {
	a := NewMixed(1, 3, 4)
	b := NewMixed(1, 1, 4)
	fmt.Printf("%s + %s = %s\n", a, b, a.Add(b))
	fmt.Printf("%s - %s = %s\n", a, b, a.Sub(b))
	fmt.Printf("%s * %s = %s\n", a, b, a.Mul(b))
	fmt.Printf("%s / %s = %s\n", a, b, a.Div(b))
	fmt.Printf("%s ^ 2 = %s\n", b, b.Pow(2))
	fmt.Printf("%s < %s: %v\n", a, b, a.Less(b))

	fmt.Printf("4/2 is %s, 6/-4 is %s\n", New(4, 2), New(-6, 4))
	fmt.Printf("%s as a float is %v\n", NewMixed(2, 1, 4), NewMixed(2, 1, 4).Float64())

	// Output:
	// 1 3/4 + 1 1/4 = 3
	// 1 3/4 - 1 1/4 = 1/2
	// 1 3/4 * 1 1/4 = 2 3/16
	// 1 3/4 / 1 1/4 = 1 2/5
	// 1 1/4 ^ 2 = 1 9/16
	// 1 3/4 < 1 1/4: false
	// 4/2 is 2, 6/-4 is -1 1/2
	// 2 1/4 as a float is 2.25
}

func ExampleFromFloat64() {
	for _, v := range []float64{1.5, -0.125, 2.0 / 3, 0.1} {
		f, err := FromFloat64(v)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v -> %s\n", v, f)
	}

	_, err := FromFloat64(1e20)
	fmt.Println(err)

	// Output:
	// 1.5 -> 1 1/2
	// -0.125 -> -1/8
	// 0.6666666666666666 -> 2/3
	// 0.1 -> 1/10
	// bad float number: 1e+20
}

func ExampleFraction_Decimal() {
	f := NewMixed(3, 1, 7)
	fmt.Println(f.Decimal(5))

	back, err := FromDecimal(f.Decimal(5))
	if err != nil {
		panic(err)
	}
	fmt.Println(back)

	// Output:
	// 3.14286
	// 3 7143/50000
}
