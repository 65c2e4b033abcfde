package cache

// Builder can build replacement engines.
type Builder struct {
	setIndexBits    int
	blockOffsetBits int
	linesPerSet     int
}

// MakeBuilder creates a new builder with a direct-mapped default geometry.
func MakeBuilder() Builder {
	return Builder{
		setIndexBits:    4,
		blockOffsetBits: 4,
		linesPerSet:     1,
	}
}

// WithSetIndexBits sets the number of address bits used as the set index.
func (b Builder) WithSetIndexBits(n int) Builder {
	b.setIndexBits = n
	return b
}

// WithBlockOffsetBits sets the number of address bits used as the block
// offset.
func (b Builder) WithBlockOffsetBits(n int) Builder {
	b.blockOffsetBits = n
	return b
}

// WithLinesPerSet sets the associativity of each set.
func (b Builder) WithLinesPerSet(n int) Builder {
	b.linesPerSet = n
	return b
}

// Build builds an engine. It panics if the geometry is invalid; callers
// taking geometry from user input should run Geometry.Validate first.
func (b Builder) Build(name string) *Engine {
	g := Geometry{
		SetIndexBits:    b.setIndexBits,
		BlockOffsetBits: b.blockOffsetBits,
		LinesPerSet:     b.linesPerSet,
	}

	if err := g.Validate(); err != nil {
		panic(err)
	}

	e := &Engine{
		name:     name,
		geometry: g,
		sets:     make([]*set, g.NumSets()),
	}
	e.Reset()

	return e
}
