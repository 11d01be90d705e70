package snr_test

import (
	"fmt"

	"github.com/cwbudde/algo-localortho/measure/snr"
)

func ExampleDB() {
	clean := []float64{1, 1, 1, 1}
	estimate := []float64{1.1, 0.9, 1.1, 0.9}
	db, err := snr.DB(clean, estimate)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f dB\n", db)
	// Output: 20.0 dB
}
