package models

// DataColumnRef identifies where the values of a series column come from:
// a named column of the render-time data source, or literal inline values.
type DataColumnRef interface{ isDataColumnRef() }

// SourceRef names a column to resolve in the data source.
type SourceRef struct {
	Name string
}

// InlineNumeric carries literal numeric values.
type InlineNumeric struct {
	Values []float64
}

// InlineText carries literal text values.
type InlineText struct {
	Values []string
}

func (SourceRef) isDataColumnRef()     {}
func (InlineNumeric) isDataColumnRef() {}
func (InlineText) isDataColumnRef()    {}
