package field

import (
	"math"
	"strconv"
	"testing"
)

func BenchmarkCalculate(b *testing.B) {
	for _, n := range []int{1024, 24000, 262144} {
		data := make([]float64, n)
		for i := range data {
			data[i] = math.Sin(2 * math.Pi * float64(i) / 97)
		}
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for range b.N {
				Calculate(data)
			}
		})
	}
}
