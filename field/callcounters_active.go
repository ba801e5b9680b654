//go:build callcounters

package field

import "github.com/AndrewCLu/baby-jubjub/internal/callcounters"

// CallCountersActive is true when built with -tags=callcounters, in which
// case field multiplications and inversions -- the two operations that
// dominate the cost of scalar multiplication -- are tallied.
const CallCountersActive = true

var mulCounter = callcounters.CreateHierarchicalCallCounter("FieldMul", "Field Multiplications", "")
var invCounter = callcounters.CreateHierarchicalCallCounter("FieldInv", "Field Inversions", "")

func incrementMulCounter() { callcounters.Id("FieldMul").Increment() }
func incrementInvCounter() { callcounters.Id("FieldInv").Increment() }
