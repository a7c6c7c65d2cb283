package plan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// SourceError ties a plan failure to the manifest text that caused it. The
// underlying *registry.UnknownTypeError or *dag.CycleError stays reachable
// through errors.As.
type SourceError struct {
	Summary string
	Range   hcl.Range
	Err     error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Diagnostics returns the error in a form hcl diagnostic writers understand.
func (e *SourceError) Diagnostics() hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  e.Summary,
		Detail:   e.Err.Error(),
		Subject:  e.Range.Ptr(),
	}}
}

// InternalError reports a broken invariant between validation and graph
// construction, e.g. a relation naming a resource that was never declared.
// Validated manifests never produce one.
type InternalError struct {
	Message string
	ID      string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s: %s", e.Message, e.ID)
}
