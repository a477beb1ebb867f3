package decimate_test

import (
	"fmt"

	"github.com/arloliu/decimate"
	"github.com/arloliu/decimate/series"
)

func ExampleDownsample() {
	x := make([]float64, 1000)
	y := make([]float64, 1000)
	for i := range x {
		x[i] = float64(i)
	}
	y[50] = 1000

	frame, _ := series.NewXY(x, y)
	out, err := decimate.Downsample(frame, 20)
	if err != nil {
		panic(err)
	}

	ys, _ := out.Dimension(1)
	peak := 0.0
	for _, v := range ys.Float64s() {
		peak = max(peak, v)
	}
	fmt.Println(out.Len(), peak)
	// Output: 20 1000
}

func ExampleOperation_Select() {
	x := make([]float64, 100)
	for i := range x {
		x[i] = float64(i)
	}
	frame, _ := series.NewXY(x, x)

	cfg, err := decimate.NewConfig(10, decimate.WithAlgorithmName("nth"), decimate.WithXRangeFrom(50))
	if err != nil {
		panic(err)
	}

	sel, err := decimate.New(cfg).Select(frame)
	if err != nil {
		panic(err)
	}
	fmt.Println(sel.Table.Len(), sel.Indices)
	// Output: 50 [0 5 10 15 20 25 30 35 40 45]
}
