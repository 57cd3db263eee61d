package geometry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldsim/internal/geometry"
)

var _ = Describe("Classifier", func() {
	var grid geometry.Grid

	BeforeEach(func() {
		var err error
		grid, err = geometry.NewGrid(3, 3, 0, 3, 0, 3)
		Expect(err).NotTo(HaveOccurred())
	})

	It("classifies out-of-range coordinates by edge", func() {
		c := geometry.NewClassifier(grid, nil)

		Expect(c.Classify(-1, 1)).To(Equal(geometry.Class{Kind: geometry.KindOutside, Side: geometry.SideLeft}))
		Expect(c.Classify(3, 1)).To(Equal(geometry.Class{Kind: geometry.KindOutside, Side: geometry.SideRight}))
		Expect(c.Classify(1, -1)).To(Equal(geometry.Class{Kind: geometry.KindOutside, Side: geometry.SideTop}))
		Expect(c.Classify(1, 3)).To(Equal(geometry.Class{Kind: geometry.KindOutside, Side: geometry.SideBottom}))
	})

	It("classifies in-range nodes without circles as interior", func() {
		c := geometry.NewClassifier(grid, nil)
		for j := 0; j < grid.Ny; j++ {
			for i := 0; i < grid.Nx; i++ {
				Expect(c.Classify(i, j).Kind).To(Equal(geometry.KindInterior))
			}
		}
	})

	It("gives edges precedence over overlapping circles", func() {
		// A huge circle swallowing the whole box, out-of-range probes
		// included. Edge classification must still win for them.
		circles := []geometry.Circle{{CX: 1.5, CY: 1.5, R: 100, Value: 7}}
		c := geometry.NewClassifier(grid, circles)

		Expect(c.Classify(-1, 0).Kind).To(Equal(geometry.KindOutside))
		Expect(c.Classify(0, 3).Kind).To(Equal(geometry.KindOutside))
		Expect(c.Classify(1, 1).Kind).To(Equal(geometry.KindCircle))
	})

	It("tests circles in input order, first match wins", func() {
		circles := []geometry.Circle{
			{CX: 1, CY: 1, R: 0.5, Value: 5},
			{CX: 1, CY: 1, R: 2.0, Value: 9},
		}
		c := geometry.NewClassifier(grid, circles)

		got := c.Classify(1, 1)
		Expect(got.Kind).To(Equal(geometry.KindCircle))
		Expect(got.Circle).To(Equal(0))
		Expect(c.CircleValue(got.Circle)).To(Equal(5.0))

		// Only the bigger circle reaches (2,2).
		got = c.Classify(2, 2)
		Expect(got.Kind).To(Equal(geometry.KindCircle))
		Expect(got.Circle).To(Equal(1))
	})

	It("treats a zero-radius circle as a single-point condition", func() {
		circles := []geometry.Circle{{CX: 1, CY: 2, R: 0, Value: 3}}
		c := geometry.NewClassifier(grid, circles)

		Expect(c.Classify(1, 2).Kind).To(Equal(geometry.KindCircle))
		Expect(c.Classify(1, 1).Kind).To(Equal(geometry.KindInterior))
		Expect(c.Classify(2, 2).Kind).To(Equal(geometry.KindInterior))
	})

	It("ignores circles entirely outside the box", func() {
		circles := []geometry.Circle{{CX: -50, CY: -50, R: 1, Value: 3}}
		c := geometry.NewClassifier(grid, circles)
		for j := 0; j < grid.Ny; j++ {
			for i := 0; i < grid.Nx; i++ {
				Expect(c.Classify(i, j).Kind).To(Equal(geometry.KindInterior))
			}
		}
	})

	It("includes the circle boundary itself", func() {
		// Node (2,1) sits at physical (2,1), exactly R away from the
		// center (1,1): the <= test counts it as inside.
		circles := []geometry.Circle{{CX: 1, CY: 1, R: 1, Value: 4}}
		c := geometry.NewClassifier(grid, circles)
		Expect(c.Classify(2, 1).Kind).To(Equal(geometry.KindCircle))
	})
})
