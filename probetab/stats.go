package probetab

type Stats struct {
	Occupied   int
	Capacity   int
	LoadFactor float64
}

// Stats reports current occupancy. Occupied/Capacity stays at or below 0.7
// after every put.
func (t *CounterTable) Stats() Stats {
	return Stats{
		Occupied:   t.occupied,
		Capacity:   t.capacity,
		LoadFactor: float64(t.occupied) / float64(t.capacity),
	}
}
