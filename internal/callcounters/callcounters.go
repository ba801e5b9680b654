// Package callcounters provides named counters for tallying how often
// certain functions are called, gated behind the callcounters build tag so
// the default build carries no bookkeeping overhead.
//
// This is a trimmed-down descendant of the teacher's call-counter package:
// the hierarchical display-as-tree machinery (parent/child aggregation,
// report formatting, add-to-target links) is gone because nothing in this
// module ever reads a report -- only CreateHierarchicalCallCounter, Id and
// Increment/Get/Reset are used, by field's instrumented Mul and Inv and its
// callcounters-tagged test.
package callcounters

type Id string

type counter struct {
	id          Id
	displayName string
	count       int
	initialized bool
}

var counters = make(map[Id]*counter)

// CreateHierarchicalCallCounter registers a counter under id with the given
// display name. parentId is recorded for documentation only: the parent
// aggregation the teacher's version performed is not needed here, since the
// only consumer (field's Mul/Inv instrumentation) reads counters directly
// by id rather than through a display hierarchy.
func CreateHierarchicalCallCounter(id Id, displayName string, parentId Id) *counter {
	if id == "" {
		panic("callCounters: called CreateHierarchicalCallCounter with empty id")
	}
	if c, exists := counters[id]; exists && c.initialized {
		panic("callCounters: added the same counter twice")
	}
	name := displayName
	if name == "" {
		name = string(id)
	}
	c := &counter{id: id, displayName: name, initialized: true}
	counters[id] = c
	return c
}

// Increment adds one to the counter registered under id. Panics if id was
// never registered via CreateHierarchicalCallCounter.
func (id Id) Increment() {
	c, ok := counters[id]
	if !ok || !c.initialized {
		panic("callCounters: incrementing an unregistered call counter: " + string(id))
	}
	c.count++
}

// Get returns the counter's current count and whether it is registered.
func (id Id) Get() (count int, ok bool) {
	c, exists := counters[id]
	if !exists || !c.initialized {
		return 0, false
	}
	return c.count, true
}

// Reset zeroes the counter registered under id, used between test cases.
func (id Id) Reset() {
	if c, ok := counters[id]; ok {
		c.count = 0
	}
}
