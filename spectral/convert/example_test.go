package convert_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectral/convert"
)

func ExampleNmToEV() {
	ev, _ := convert.NmToEV(300)
	fmt.Printf("%.4f\n", ev)
	// Output:
	// 4.1316
}

func ExampleNmToInvCm() {
	fmt.Printf("%.1f\n", convert.NmToInvCm(500))
	// Output:
	// 20000.0
}

func ExampleNmToRamanShift() {
	// Stokes-shifted emission at 550 nm under 532 nm excitation.
	shift := convert.NmToRamanShift(550, 532)
	fmt.Printf("%.1f\n", shift)
	// Output:
	// 615.2
}
