package unionfind

// ParentOf exposes the raw parent pointer to the external test package.
func ParentOf(uf *UnionFind, x int) int { return uf.parentOf(x) }
