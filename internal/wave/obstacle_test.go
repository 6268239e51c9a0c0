package wave_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/wave"
)

var _ = Describe("ObstacleField", func() {
	var field *wave.ObstacleField

	BeforeEach(func() {
		field = wave.NewObstacleField()
	})

	It("counts points on the rim as inside", func() {
		field.Add(10, 10, 5)
		Expect(field.Contains(15, 10)).To(BeTrue())
		Expect(field.Contains(13, 14)).To(BeTrue())
		Expect(field.Contains(15.01, 10)).To(BeFalse())
	})

	It("keeps duplicates and overlaps", func() {
		field.Add(10, 10, 5)
		field.Add(10, 10, 5)
		Expect(field.Len()).To(Equal(2))
	})

	It("removes the first match in insertion order", func() {
		field.Add(10, 10, 5)
		field.Add(12, 10, 5)
		Expect(field.RemoveAt(11, 10)).To(BeTrue())
		Expect(field.All()).To(Equal([]wave.Obstacle{{X: 12, Y: 10, Radius: 5}}))
	})

	It("reports a miss without changing anything", func() {
		field.Add(10, 10, 5)
		Expect(field.RemoveAt(100, 100)).To(BeFalse())
		Expect(field.Len()).To(Equal(1))
	})

	It("hands out copies", func() {
		field.Add(1, 1, 1)
		all := field.All()
		all[0].Radius = 40
		Expect(field.All()[0].Radius).To(Equal(1.0))
	})

	It("clears", func() {
		field.Add(1, 1, 1)
		field.Clear()
		Expect(field.Len()).To(BeZero())
		Expect(field.Contains(1, 1)).To(BeFalse())
	})
})
