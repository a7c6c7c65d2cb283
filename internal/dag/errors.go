package dag

import (
	"errors"
	"fmt"
)

// CycleError reports an edge that was rejected because it would close a
// cycle. From and To are the node keys of the offending edge.
type CycleError struct {
	From string
	To   string
}

func (e *CycleError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("edge %s -> %s would create a cycle: self-referential edge", e.From, e.To)
	}
	return fmt.Sprintf("edge %s -> %s would create a cycle: %s already depends on %s", e.From, e.To, e.From, e.To)
}

// AsCycleError unwraps err looking for a *CycleError.
func AsCycleError(err error) (*CycleError, bool) {
	var cycleErr *CycleError
	if errors.As(err, &cycleErr) {
		return cycleErr, true
	}
	return nil, false
}
