package hashtab

// Stats is a point-in-time snapshot of a table's occupancy.
type Stats struct {
	Size       int
	Slots      int
	Items      int
	Tombstones int
	LoadFactor float64
}
