package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-localortho/measure/snr"
	"github.com/cwbudde/algo-localortho/stats/field"
)

// similarityThreshold marks a sample as showing signal leakage.
const similarityThreshold = 0.5

func printReport(w io.Writer, opts options, in inputs, out outputs) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Shape\t%v\n", in.signal.Shape())
	fmt.Fprintf(tw, "Radius\t%v\n", opts.radii)
	fmt.Fprintf(tw, "Similarity radius\t%v (%s)\n", opts.simRadii, opts.combinator)
	fmt.Fprintf(tw, "Iterations\t%d\n", opts.iterations)
	fmt.Fprintf(tw, "SIMD\t%s\n", simdLevel(cpu.DetectFeatures()))
	fmt.Fprintln(tw)

	if in.clean != nil {
		fmt.Fprintf(tw, "SNR\tdB\n")
		for _, row := range []struct {
			name string
			data []float64
		}{
			{"noisy", in.noisy.Data},
			{"initial signal", in.signal.Data},
			{"orthogonalized signal", out.result.Signal.Data},
		} {
			db, err := snr.DB(in.clean.Data, row.data)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "  %s\t%.2f\n", row.name, db)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintf(tw, "\tbefore\tafter\n")
	fmt.Fprintf(tw, "Signal/noise correlation\t%.4f\t%.4f\n",
		field.Correlation(in.signal.Data, in.noise.Data),
		field.Correlation(out.result.Signal.Data, out.result.Noise.Data))

	before := field.Calculate(out.simBefore.Data)
	after := field.Calculate(out.simAfter.Data)
	fmt.Fprintf(tw, "Similarity mean\t%.4f\t%.4f\n", before.Mean, after.Mean)
	fmt.Fprintf(tw, "Similarity max\t%.4f\t%.4f\n", before.Max, after.Max)
	fmt.Fprintf(tw, "Similarity >= %.1f\t%.2f%%\t%.2f%%\n", similarityThreshold,
		100*field.Fraction(out.simBefore.Data, similarityThreshold),
		100*field.Fraction(out.simAfter.Data, similarityThreshold))
	fmt.Fprintln(tw)

	ws := field.Calculate(out.result.Weight.Data)
	fmt.Fprintf(tw, "Weight\tmin %.4f\tmax %.4f\trms %.4f\n", ws.Min, ws.Max, ws.RMS)

	return tw.Flush()
}

func simdLevel(f cpu.Features) cpu.SIMDLevel {
	for _, level := range []cpu.SIMDLevel{cpu.SIMDAVX512, cpu.SIMDAVX2, cpu.SIMDAVX, cpu.SIMDSSE2, cpu.SIMDNEON} {
		if cpu.Supports(f, level) {
			return level
		}
	}
	return cpu.SIMDNone
}
