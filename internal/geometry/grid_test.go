package geometry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldsim/internal/geometry"
)

var _ = Describe("Grid", func() {
	Describe("NewGrid", func() {
		It("rejects zero node counts", func() {
			_, err := geometry.NewGrid(0, 3, 0, 1, 0, 1)
			Expect(err).To(MatchError(geometry.ErrGridSize))

			_, err = geometry.NewGrid(3, 0, 0, 1, 0, 1)
			Expect(err).To(MatchError(geometry.ErrGridSize))
		})

		It("rejects negative node counts", func() {
			_, err := geometry.NewGrid(-1, 3, 0, 1, 0, 1)
			Expect(err).To(MatchError(geometry.ErrGridSize))
		})

		It("rejects degenerate bounds", func() {
			_, err := geometry.NewGrid(3, 3, 1, 1, 0, 1)
			Expect(err).To(MatchError(geometry.ErrGridBounds))

			_, err = geometry.NewGrid(3, 3, 0, 1, 2, 1)
			Expect(err).To(MatchError(geometry.ErrGridBounds))
		})

		It("accepts a valid grid", func() {
			g, err := geometry.NewGrid(4, 5, -1, 1, 0, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.NumNodes()).To(Equal(20))
			Expect(g.Dx()).To(BeNumerically("~", 0.5, 1e-15))
			Expect(g.Dy()).To(BeNumerically("~", 2.0, 1e-15))
		})
	})

	Describe("Index", func() {
		It("round-trips with Coords over the whole grid", func() {
			g, err := geometry.NewGrid(7, 4, 0, 7, 0, 4)
			Expect(err).NotTo(HaveOccurred())

			seen := make(map[int]bool)
			for j := 0; j < g.Ny; j++ {
				for i := 0; i < g.Nx; i++ {
					id := g.Index(i, j)
					Expect(id).To(SatisfyAll(
						BeNumerically(">=", 0),
						BeNumerically("<", g.NumNodes()),
					))
					Expect(seen[id]).To(BeFalse(), "index must be injective")
					seen[id] = true

					ri, rj := g.Coords(id)
					Expect(ri).To(Equal(i))
					Expect(rj).To(Equal(j))
				}
			}
			Expect(seen).To(HaveLen(g.NumNodes()))
		})

		It("flattens row-major with i varying fastest", func() {
			g, _ := geometry.NewGrid(3, 3, 0, 3, 0, 3)
			Expect(g.Index(0, 0)).To(Equal(0))
			Expect(g.Index(2, 0)).To(Equal(2))
			Expect(g.Index(0, 1)).To(Equal(3))
			Expect(g.Index(2, 2)).To(Equal(8))
		})
	})

	Describe("physical coordinates", func() {
		It("places nodes at xmin + i*dx", func() {
			g, _ := geometry.NewGrid(4, 4, 2, 6, -2, 2)
			Expect(g.X(0)).To(Equal(2.0))
			Expect(g.X(3)).To(BeNumerically("~", 5.0, 1e-15))
			Expect(g.Y(0)).To(Equal(-2.0))
			Expect(g.Y(2)).To(BeNumerically("~", 0.0, 1e-15))
		})
	})
})
