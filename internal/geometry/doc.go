// Package geometry models the problem domain: the rectangular node
// grid, the Dirichlet values on its outer edges, the embedded
// fixed-value circles, and the classification of grid coordinates into
// interior unknowns, out-of-box edge probes, and circle-bound nodes.
//
// The package owns the flattening bijection between (i,j) node
// coordinates and the linear unknown index. Assembly and field
// reshaping both use [Grid.Index]; no second index formula exists
// anywhere in the module.
package geometry
