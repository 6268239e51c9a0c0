package wave_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/wave"
)

func newGrid(size int) *wave.Grid {
	g, err := wave.NewGrid(float64(size*4), float64(size*4), size)
	Expect(err).NotTo(HaveOccurred())
	return g
}

var _ = Describe("Grid", func() {
	It("rejects grids without interior cells", func() {
		_, err := wave.NewGrid(100, 100, 2)
		Expect(err).To(MatchError(wave.ErrGridTooSmall))
	})

	It("keeps three distinct buffers of the same shape", func() {
		g := newGrid(8)
		for _, buf := range [][][]float64{g.Previous(), g.Current(), g.Next()} {
			Expect(buf).To(HaveLen(8))
			for _, row := range buf {
				Expect(row).To(HaveLen(8))
			}
		}
		g.Current()[3][3] = 1
		Expect(g.Previous()[3][3]).To(BeZero())
		Expect(g.Next()[3][3]).To(BeZero())
	})

	It("rotates roles without copying", func() {
		g := newGrid(6)
		prev, cur, next := g.Previous(), g.Current(), g.Next()
		g.Rotate()
		Expect(&g.Previous()[0][0]).To(BeIdenticalTo(&cur[0][0]))
		Expect(&g.Current()[0][0]).To(BeIdenticalTo(&next[0][0]))
		Expect(&g.Next()[0][0]).To(BeIdenticalTo(&prev[0][0]))
	})

	It("zeroes all buffers in place on reset", func() {
		g := newGrid(6)
		cur := g.Current()
		g.Previous()[2][2], cur[2][2], g.Next()[2][2] = 1, 2, 3
		g.Reset()
		Expect(&g.Current()[0][0]).To(BeIdenticalTo(&cur[0][0]))
		Expect(g.Previous()[2][2]).To(BeZero())
		Expect(g.Current()[2][2]).To(BeZero())
		Expect(g.Next()[2][2]).To(BeZero())
	})

	It("maps pixels to cells with floor semantics", func() {
		g := newGrid(10) // cellSize 4
		row, col := g.CellAt(7.9, 12.0)
		Expect(row).To(Equal(3))
		Expect(col).To(Equal(1))
		x, y := g.CellCenter(3, 1)
		Expect(x).To(Equal(6.0))
		Expect(y).To(Equal(14.0))
	})
})

var _ = Describe("Step", func() {
	var (
		g      *wave.Grid
		params wave.Params
	)

	BeforeEach(func() {
		g = newGrid(10)
		params = wave.DefaultParams()
	})

	DescribeTable("leaves a zero field at rest",
		func(damping, speed float64, b wave.Boundary) {
			params.Damping, params.Speed, params.Boundary = damping, speed, b
			g.Step(wave.NewObstacleField(), params)
			g.Interior(func(i, j int) {
				Expect(g.Next()[i][j]).To(BeZero())
			})
		},
		Entry("low damping, slow", 0.9, 0.1, wave.Absorbing),
		Entry("unit damping", 1.0, 0.5, wave.Reflecting),
		Entry("gain, fast", 1.1, 1.0, wave.Periodic),
	)

	It("applies damping to the whole leapfrog update", func() {
		params.Damping, params.Speed = 0.95, 0.5
		g.Current()[5][5] = 1
		g.Previous()[5][5] = 0.25
		g.Step(nil, params)

		// centre: L = -4, 2*1 - 0.25 + 0.25*(-4) = 0.75
		Expect(g.Next()[5][5]).To(BeNumerically("~", 0.95*0.75, 1e-12))
		// neighbour: L = 1, 0 - 0 + 0.25*1 = 0.25
		Expect(g.Next()[4][5]).To(BeNumerically("~", 0.95*0.25, 1e-12))
		Expect(g.Next()[5][6]).To(BeNumerically("~", 0.95*0.25, 1e-12))
	})

	It("does not touch border cells", func() {
		g.Next()[0][4] = 7
		g.Current()[1][4] = 1
		g.Step(nil, params)
		Expect(g.Next()[0][4]).To(Equal(7.0))
	})

	It("pins cells inside obstacles to zero regardless of neighbours", func() {
		for i := range g.Current() {
			for j := range g.Current()[i] {
				g.Current()[i][j] = 3
			}
		}
		obstacles := wave.NewObstacleField()
		// centre of cell (4, 4) is (18, 18); radius reaches it exactly
		cx, cy := g.CellCenter(4, 4)
		obstacles.Add(cx+2, cy, 2)
		g.Step(obstacles, params)
		Expect(g.Next()[4][4]).To(BeZero())
		Expect(g.Next()[4][5]).To(BeZero())
		Expect(g.Next()[4][3]).NotTo(BeZero())
	})

	It("never writes outside the next buffer", func() {
		g.Current()[5][5] = 1
		g.Step(nil, params)
		Expect(g.Current()[5][5]).To(Equal(1.0))
		Expect(g.Previous()[5][5]).To(BeZero())
	})
})

var _ = Describe("InjectRipple", func() {
	It("stamps a cone that falls off with distance", func() {
		g := newGrid(20)
		g.Current()[10][13] = -9
		x, y := g.CellCenter(10, 10)
		g.InjectRipple(x, y, 5)

		cur := g.Current()
		Expect(cur[10][10]).To(Equal(5.0))
		Expect(cur[10][12]).To(BeNumerically("~", 5.0/3, 1e-12))
		Expect(cur[12][10]).To(BeNumerically("~", 5.0/3, 1e-12))
		Expect(cur[11][11]).To(BeNumerically("~", 5*(1-1.4142135623730951/3), 1e-12))
		Expect(cur[10][13]).To(Equal(-9.0))
	})

	It("overwrites instead of accumulating", func() {
		g := newGrid(20)
		x, y := g.CellCenter(10, 10)
		g.InjectRipple(x, y, 5)
		g.InjectRipple(x, y, 5)
		Expect(g.Current()[10][10]).To(Equal(5.0))
	})

	It("clips the stamp at the grid edge", func() {
		g := newGrid(10)
		Expect(func() { g.InjectRipple(0, 0, 2) }).NotTo(Panic())
		Expect(g.Current()[0][0]).To(Equal(2.0))
		Expect(g.Current()[2][2]).To(BeNumerically("~", 2*(1-2.8284271247461903/3), 1e-12))
	})

	It("writes only to the current buffer", func() {
		g := newGrid(10)
		g.InjectRipple(20, 20, 1)
		Expect(g.Next()[5][5]).To(BeZero())
		Expect(g.Previous()[5][5]).To(BeZero())
	})
})

var _ = Describe("Params", func() {
	It("starts from valid defaults", func() {
		Expect(wave.DefaultParams().Validate()).To(Succeed())
	})

	It("rejects out-of-domain values", func() {
		p := wave.DefaultParams()
		p.Speed = 1.5
		Expect(p.Validate()).To(MatchError(wave.ErrParameterBounds))

		p = wave.DefaultParams()
		p.Boundary = "sticky"
		Expect(p.Validate()).To(MatchError(wave.ErrUnknownBoundary))

		p = wave.DefaultParams()
		p.Scheme = "plaid"
		Expect(p.Validate()).To(MatchError(colormap.ErrUnknownScheme))
	})

	It("adjusts on slider steps and clamps", func() {
		p := wave.DefaultParams()
		p.Adjust("damping", 1)
		Expect(p.Damping).To(BeNumerically("~", 0.991, 1e-12))
		p.Adjust("speed", 100)
		Expect(p.Speed).To(Equal(wave.MaxSpeed))
		p.Adjust("obstacle_radius", -5)
		Expect(p.ObstacleRadius).To(Equal(wave.MinObstacleRadius))
	})

	It("sets tunables by name", func() {
		p := wave.DefaultParams()
		Expect(p.Set("amplitude", 2.5)).To(BeTrue())
		Expect(p.Value("amplitude")).To(Equal(2.5))
		Expect(p.Set("obstacle_radius", 7.4)).To(BeTrue())
		Expect(p.ObstacleRadius).To(Equal(7))
		Expect(p.Set("gravity", 1)).To(BeFalse())
	})
})
