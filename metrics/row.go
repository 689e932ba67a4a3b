package metrics

// Row is an ordered mapping from metric name to value. Insertion order
// defines display order.
type Row struct {
	names  []string
	values map[string]float64
}

// NewRow creates an empty metric row.
func NewRow() *Row {
	return &Row{values: make(map[string]float64)}
}

// Set stores a metric value, appending the name on first use.
func (r *Row) Set(name string, value float64) *Row {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
	return r
}

// Get returns the named metric value.
func (r *Row) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of metrics in the row.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Names returns the metric names in insertion order.
func (r *Row) Names() []string {
	if r == nil {
		return nil
	}
	return r.names
}

// merge returns a display row: train entries followed by validation
// entries with each name suffixed "_val". A nil or empty validation row
// leaves the training row untouched.
func (r *Row) merge(val *Row) *Row {
	if val.Len() == 0 {
		return r
	}
	if r == nil {
		r = NewRow()
	}
	merged := NewRow()
	for _, name := range r.names {
		merged.Set(name, r.values[name])
	}
	for _, name := range val.names {
		merged.Set(name+"_val", val.values[name])
	}
	return merged
}
