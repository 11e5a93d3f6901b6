// Package layout groups scalar canvas coordinates into discrete axis bins.
//
// # Leader Clustering
//
// [Cluster] implements single-pass leader clustering: values are walked in
// ascending order, and a value joins the current cluster while it stays
// within a fixed tolerance of the cluster's running centroid, otherwise it
// starts a new cluster. The centroid is updated as the incremental mean of
// every value absorbed so far.
//
// This is a greedy approximation, not a globally optimal partition: a chain
// of values each within tolerance of its neighbor can drift the centroid so
// that a later value starts a new cluster even though a different grouping
// would hold everything together. For hand-placed mind-map topics the gaps
// between intended rows or columns are far larger than the tolerance, so
// the approximation is accepted.
//
// Clustering is run independently per axis: x values yield columns, y
// values yield rows.
package layout

import "sort"

// DefaultTolerance is the clustering tolerance used for canvas layouts,
// in canvas units.
const DefaultTolerance = 25.0

// Clusters is the result of clustering one axis: cluster centers in
// ascending order, plus a map from each input value's original index to
// the id (position in Centers) of the cluster that absorbed it.
type Clusters struct {
	Centers []float64
	Index   map[int]int
}

// Count returns the number of clusters.
func (c *Clusters) Count() int {
	return len(c.Centers)
}

// Cluster groups values into axis bins using leader clustering with the
// given tolerance. Returns nil for empty input. Cluster membership depends
// only on the multiset of values, not their order: ties are broken by
// original index, so permuting equal values never changes the result.
func Cluster(values []float64, tolerance float64) *Clusters {
	if len(values) == 0 {
		return nil
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	var centers []float64
	var sizes []int
	index := make(map[int]int, len(values))

	for _, i := range order {
		v := values[i]
		if len(centers) == 0 || v-centers[len(centers)-1] > tolerance {
			centers = append(centers, v)
			sizes = append(sizes, 1)
		} else {
			last := len(centers) - 1
			sizes[last]++
			// Incremental mean over every value absorbed so far.
			centers[last] += (v - centers[last]) / float64(sizes[last])
		}
		index[i] = len(centers) - 1
	}

	return &Clusters{Centers: centers, Index: index}
}
