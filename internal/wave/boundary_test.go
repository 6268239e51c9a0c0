package wave_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/wave"
)

// filled returns an n×n grid where every cell holds a distinct value.
func filled(n int) [][]float64 {
	g := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
		for j := range g[i] {
			g[i][j] = float64(i*n+j) + 1
		}
	}
	return g
}

func snapshot(g [][]float64) [][]float64 {
	out := make([][]float64, len(g))
	for i := range g {
		out[i] = append([]float64(nil), g[i]...)
	}
	return out
}

var _ = Describe("Boundary", func() {
	const n = 10
	last := n - 1

	Describe("absorbing", func() {
		It("zeroes the whole ring", func() {
			g := filled(n)
			wave.Absorbing.Apply(g)
			for i := 0; i < n; i++ {
				Expect(g[i][0]).To(BeZero())
				Expect(g[i][last]).To(BeZero())
				Expect(g[0][i]).To(BeZero())
				Expect(g[last][i]).To(BeZero())
			}
			Expect(g[1][1]).To(Equal(12.0))
		})

		It("is the fallback for unknown names", func() {
			g := filled(n)
			wave.Boundary("sticky").Apply(g)
			Expect(g[0][0]).To(BeZero())
			Expect(g[4][last]).To(BeZero())
		})
	})

	Describe("reflecting", func() {
		It("mirrors the inward neighbour onto each edge", func() {
			g := filled(n)
			wave.Reflecting.Apply(g)
			for i := 1; i < last; i++ {
				Expect(g[i][0]).To(Equal(g[i][1]))
				Expect(g[i][last]).To(Equal(g[i][last-1]))
				Expect(g[0][i]).To(Equal(g[1][i]))
				Expect(g[last][i]).To(Equal(g[last-1][i]))
			}
		})

		It("averages corners from the mirrored edges", func() {
			g := filled(n)
			wave.Reflecting.Apply(g)
			Expect(g[0][0]).To(Equal((g[0][1] + g[1][0]) / 2))
			Expect(g[0][last]).To(Equal((g[0][last-1] + g[1][last]) / 2))
			Expect(g[last][0]).To(Equal((g[last-1][0] + g[last][1]) / 2))
			Expect(g[last][last]).To(Equal((g[last-1][last] + g[last][last-1]) / 2))
			// g[0][1] = g[1][1] = 12, g[1][0] = g[1][1] = 12
			Expect(g[0][0]).To(Equal(12.0))
		})
	})

	Describe("periodic", func() {
		It("wraps edges from the far interior cell", func() {
			g := filled(n)
			before := snapshot(g)
			wave.Periodic.Apply(g)
			for i := 1; i < last; i++ {
				Expect(g[i][0]).To(Equal(before[i][n-2]))
				Expect(g[i][last]).To(Equal(before[i][1]))
				Expect(g[0][i]).To(Equal(before[n-2][i]))
				Expect(g[last][i]).To(Equal(before[1][i]))
			}
		})

		It("wraps corners diagonally", func() {
			g := filled(n)
			before := snapshot(g)
			wave.Periodic.Apply(g)
			Expect(g[0][0]).To(Equal(before[n-2][n-2]))
			Expect(g[0][last]).To(Equal(before[n-2][1]))
			Expect(g[last][0]).To(Equal(before[1][n-2]))
			Expect(g[last][last]).To(Equal(before[1][1]))
		})
	})

	It("leaves the interior alone", func() {
		for _, b := range wave.Boundaries() {
			g := filled(n)
			before := snapshot(g)
			b.Apply(g)
			for i := 1; i < last; i++ {
				Expect(g[i][1:last]).To(Equal(before[i][1:last]), "boundary %s", b)
			}
		}
	})

	It("parses and cycles names", func() {
		b, err := wave.ParseBoundary(" Periodic ")
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(wave.Periodic))
		Expect(b.Next()).To(Equal(wave.Absorbing))

		_, err = wave.ParseBoundary("sticky")
		Expect(err).To(MatchError(wave.ErrUnknownBoundary))
	})
})
