package duration_test

import (
	"fmt"

	"github.com/cwbudde/algo-gpdata/duration"
)

func ExampleParse() {
	d, err := duration.Parse("2h30m")
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Approx().Hours())
	// Output:
	// 2.5
}

func ExampleStep_Along() {
	step, _ := duration.ParseStep("1D")
	seconds, _ := step.Along(true)
	fmt.Println(seconds)
	// Output:
	// 86400
}
