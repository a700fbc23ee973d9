package customquery

import "strings"

// Joins is an insertion ordered set of join clauses keyed by table or alias.
// An empty clause records that the key must be joined by the outer query.
type Joins struct {
	keys    []string
	clauses map[string]string
}

func NewJoins() *Joins {
	return &Joins{clauses: map[string]string{}}
}

// Set stores clause under key. Overwriting keeps the position of key.
func (j *Joins) Set(key, clause string) {
	if _, ok := j.clauses[key]; !ok {
		j.keys = append(j.keys, key)
	}
	j.clauses[key] = clause
}

func (j *Joins) Get(key string) (string, bool) {
	clause, ok := j.clauses[key]
	return clause, ok
}

func (j *Joins) Has(key string) bool {
	_, ok := j.clauses[key]
	return ok
}

func (j *Joins) Keys() []string {
	return append([]string(nil), j.keys...)
}

func (j *Joins) Len() int {
	return len(j.keys)
}

// Clauses returns the non-empty clauses in insertion order.
func (j *Joins) Clauses() []string {
	out := make([]string, 0, len(j.keys))
	for _, k := range j.keys {
		if c := j.clauses[k]; c != "" {
			out = append(out, c)
		}
	}
	return out
}

// String renders the non-empty clauses separated by spaces.
func (j *Joins) String() string {
	return strings.Join(j.Clauses(), " ")
}
