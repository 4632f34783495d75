package models

// Snapshot is everything the engine needs for one evaluation.
// Update helpers never mutate the receiver; they return a new Snapshot.
type Snapshot struct {
	Schedule      []TemperatureBreakpoint `json:"schedule"`
	SimulationEnd int                     `json:"simulation_end"` // minute offset of day
	IntervalMin   int                     `json:"interval_min"`
	Products      []Product               `json:"products"`
	Batches       []Batch                 `json:"batches"`
}

// IsZero reports whether nothing has been stored yet.
func (s Snapshot) IsZero() bool {
	return s.IntervalMin == 0 && len(s.Schedule) == 0 && len(s.Products) == 0 && len(s.Batches) == 0
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		SimulationEnd: s.SimulationEnd,
		IntervalMin:   s.IntervalMin,
		Schedule:      append([]TemperatureBreakpoint(nil), s.Schedule...),
		Products:      append([]Product(nil), s.Products...),
		Batches:       make([]Batch, len(s.Batches)),
	}
	for i, b := range s.Batches {
		out.Batches[i] = b.clone()
	}
	return out
}

// Product looks a product up by key.
func (s Snapshot) Product(key string) (Product, bool) {
	for _, p := range s.Products {
		if p.Key == key {
			return p, true
		}
	}
	return Product{}, false
}

// Batch looks a batch up by id.
func (s Snapshot) Batch(id string) (Batch, bool) {
	for _, b := range s.Batches {
		if b.ID == id {
			return b.clone(), true
		}
	}
	return Batch{}, false
}

// WithSchedule replaces the temperature schedule.
func (s Snapshot) WithSchedule(schedule []TemperatureBreakpoint) Snapshot {
	out := s.Clone()
	out.Schedule = append([]TemperatureBreakpoint(nil), schedule...)
	return out
}

// WithSimulation replaces the simulation end and sampling interval.
func (s Snapshot) WithSimulation(end, interval int) Snapshot {
	out := s.Clone()
	out.SimulationEnd = end
	out.IntervalMin = interval
	return out
}

// WithProduct replaces the product with the same key, or appends it.
func (s Snapshot) WithProduct(p Product) Snapshot {
	out := s.Clone()
	for i := range out.Products {
		if out.Products[i].Key == p.Key {
			out.Products[i] = p
			return out
		}
	}
	out.Products = append(out.Products, p)
	return out
}

// WithoutProduct drops a product by key. The bool is false when the key is unknown.
func (s Snapshot) WithoutProduct(key string) (Snapshot, bool) {
	out := s.Clone()
	for i := range out.Products {
		if out.Products[i].Key == key {
			out.Products = append(out.Products[:i], out.Products[i+1:]...)
			return out, true
		}
	}
	return out, false
}

// WithBatch replaces the batch with the same id, or appends it.
func (s Snapshot) WithBatch(b Batch) Snapshot {
	out := s.Clone()
	b = b.clone()
	for i := range out.Batches {
		if out.Batches[i].ID == b.ID {
			out.Batches[i] = b
			return out
		}
	}
	out.Batches = append(out.Batches, b)
	return out
}

// WithoutBatch drops a batch by id. The bool is false when the id is unknown.
func (s Snapshot) WithoutBatch(id string) (Snapshot, bool) {
	out := s.Clone()
	for i := range out.Batches {
		if out.Batches[i].ID == id {
			out.Batches = append(out.Batches[:i], out.Batches[i+1:]...)
			return out, true
		}
	}
	return out, false
}

func (b Batch) clone() Batch {
	if b.TargetReadyTime != nil {
		t := *b.TargetReadyTime
		b.TargetReadyTime = &t
	}
	if b.IdealReferenceMinutes != nil {
		v := *b.IdealReferenceMinutes
		b.IdealReferenceMinutes = &v
	}
	return b
}
