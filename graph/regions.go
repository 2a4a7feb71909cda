package graph

// Regions is an ordered list of region sizes. It implicitly partitions
// vertex indices into contiguous blocks: region 0 occupies [0, sizes[0]),
// region 1 the next sizes[1] indices, and so on. Only the size list is
// stored; offsets and vertex ranges are derived on demand.
type Regions []int

// Validate returns ErrBadRegionSize if any region has a negative size.
func (r Regions) Validate() error {
	for _, size := range r {
		if size < 0 {
			return ErrBadRegionSize
		}
	}
	return nil
}

// Total returns the combined vertex count of all regions.
func (r Regions) Total() int {
	var n int
	for _, size := range r {
		n += size
	}
	return n
}

// Offset returns the first vertex index of region i.
// Returns ErrRegionIndex when i is outside the partition.
func (r Regions) Offset(i int) (int, error) {
	if i < 0 || i >= len(r) {
		return 0, ErrRegionIndex
	}
	var off int
	for _, size := range r[:i] {
		off += size
	}
	return off, nil
}

// Verts returns the vertex indices of region i in ascending order.
// Returns ErrRegionIndex when i is outside the partition.
func (r Regions) Verts(i int) ([]int, error) {
	off, err := r.Offset(i)
	if err != nil {
		return nil, err
	}
	verts := make([]int, r[i])
	for j := range verts {
		verts[j] = off + j
	}
	return verts, nil
}
