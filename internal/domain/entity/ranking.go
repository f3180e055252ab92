package entity

// Field is one named attribute of a ranking record. Value holds whatever the
// dataset carried: string, float64, bool, nil, or a nested value.
type Field struct {
	Name  string
	Value any
}

// Record is one ranked participant. Fields keep the order of the dataset.
type Record struct {
	Fields []Field
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Ranking is the ordered, load-once collection shown by the table view.
// Columns is the union of field names over all records in first-seen order.
type Ranking struct {
	Columns []string
	Records []Record
}

func (r Ranking) Len() int {
	return len(r.Records)
}
