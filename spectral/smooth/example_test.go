package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectral/smooth"
)

func ExampleDespike() {
	// A cosmic ray hit on an otherwise flat spectrum.
	data := []float64{12, 12, 12, 4000, 12, 12, 12}

	clean, err := smooth.Despike(data, 2, 5)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(clean)
	// Output:
	// [12 12 12 12 12 12 12]
}
