package freezeguard

import (
	"fmt"
)

// ChangeAfterFreezeError reports a write that diverged from the baseline
// captured when the entity was frozen. It is returned by the default
// change callback and can be matched with errors.As to decide recovery.
type ChangeAfterFreezeError struct {
	Name string // name of the tracked entity
}

// Error implements the error interface.
func (e *ChangeAfterFreezeError) Error() string {
	return fmt.Sprintf("content of %s changed after being frozen", e.Name)
}
