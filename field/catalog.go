package field

// Catalog holds the specs and option caches of the requested fields, in
// request order.
type Catalog struct {
	ids     []int64
	fields  map[int64]*Spec
	options map[int64]*Options
}

func NewCatalog() *Catalog {
	return &Catalog{
		fields:  map[int64]*Spec{},
		options: map[int64]*Options{},
	}
}

// Add stores s with its option cache. Re-adding an id replaces it in place.
func (c *Catalog) Add(s *Spec, o *Options) {
	if _, ok := c.fields[s.ID]; !ok {
		c.ids = append(c.ids, s.ID)
	}
	c.fields[s.ID] = s
	if o == nil {
		o = NewOptions(s)
	}
	c.options[s.ID] = o
}

func (c *Catalog) Field(id int64) (*Spec, bool) {
	s, ok := c.fields[id]
	return s, ok
}

func (c *Catalog) Options(id int64) *Options {
	return c.options[id]
}

// IDs returns field ids in insertion order.
func (c *Catalog) IDs() []int64 {
	return append([]int64(nil), c.ids...)
}

func (c *Catalog) Len() int {
	return len(c.ids)
}
