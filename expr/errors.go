package expr

import "fmt"

// ContractViolation marks an internal invariant breach — a programmer
// error that must never trigger on well-formed external input. Callers
// never recover from it; it is raised via panic, mirroring the reference
// implementation's liberal use of panic! for the same class of bug
// (attempting to read below MAX_DEPTH, taking the parent of the root,
// instantiating with a bad depth budget).
type ContractViolation struct {
	Op      string
	Message string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func violate(op, format string, args ...any) {
	panic(ContractViolation{Op: op, Message: fmt.Sprintf(format, args...)})
}
