package grouping

// Related reports whether the expenses at indexes i and j belong together.
type Related func(i, j int) bool

// Clusterer partitions n items into clusters given a pairwise predicate.
// Every index appears in exactly one cluster and the first index of each
// cluster is its seed.
type Clusterer interface {
	Name() string
	Cluster(n int, related Related) [][]int
}

// GreedySeedClusterer compares every unassigned item with the current seed
// only. Two members may end up together without being related to each
// other directly.
type GreedySeedClusterer struct{}

// Name returns the clusterer name.
func (GreedySeedClusterer) Name() string { return "greedy" }

// Cluster implements Clusterer.
func (GreedySeedClusterer) Cluster(n int, related Related) [][]int {
	processed := make([]bool, n)
	var clusters [][]int
	for i := 0; i < n; i++ {
		if processed[i] {
			continue
		}
		processed[i] = true
		cluster := []int{i}
		for j := i + 1; j < n; j++ {
			if processed[j] || !related(i, j) {
				continue
			}
			processed[j] = true
			cluster = append(cluster, j)
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// TransitiveClusterer builds the connected components of the relation with
// a union-find over all pairs, so clusters do not depend on input order.
type TransitiveClusterer struct{}

// Name returns the clusterer name.
func (TransitiveClusterer) Name() string { return "transitive" }

// Cluster implements Clusterer. Clusters are ordered by their lowest index
// and members ascend.
func (TransitiveClusterer) Cluster(n int, related Related) [][]int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ri, rj := find(i), find(j)
			if ri == rj || !related(i, j) {
				continue
			}
			// keep the lowest index as root
			if rj < ri {
				ri, rj = rj, ri
			}
			parent[rj] = ri
		}
	}

	index := make(map[int]int)
	var clusters [][]int
	for i := 0; i < n; i++ {
		root := find(i)
		pos, ok := index[root]
		if !ok {
			pos = len(clusters)
			index[root] = pos
			clusters = append(clusters, nil)
		}
		clusters[pos] = append(clusters[pos], i)
	}
	return clusters
}

// ClustererByName returns the clusterer for "greedy" or "transitive",
// defaulting to greedy.
func ClustererByName(name string) Clusterer {
	if name == (TransitiveClusterer{}).Name() {
		return TransitiveClusterer{}
	}
	return GreedySeedClusterer{}
}
