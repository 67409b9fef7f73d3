package data

// ResultType is the outcome of a data transaction.
type ResultType int

const (
	ResultUndefined ResultType = iota
	ResultSuccess
	ResultFailure
	ResultError
	ResultCancelled
)

func (t ResultType) String() string {
	switch t {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	case ResultError:
		return "error"
	case ResultCancelled:
		return "cancelled"
	default:
		return "undefined"
	}
}

// Result describes what a write or remove did to a holder.
type Result struct {
	Type       ResultType
	Successful []Value
	Replaced   []Value
	Rejected   []Value
}

// IsSuccessful reports whether the transaction succeeded.
func (r Result) IsSuccessful() bool { return r.Type == ResultSuccess }

// SuccessResult reports a successful write of value that replaced the
// given previous values.
func SuccessResult(value Value, replaced ...Value) Result {
	return Result{
		Type:       ResultSuccess,
		Successful: []Value{value},
		Replaced:   replaced,
	}
}

// SuccessRemove reports a removal of the given values.
func SuccessRemove(removed ...Value) Result {
	return Result{Type: ResultSuccess, Replaced: removed}
}

// SuccessNoData reports a success that changed nothing.
func SuccessNoData() Result {
	return Result{Type: ResultSuccess}
}

// FailResult reports values the holder rejected.
func FailResult(rejected ...Value) Result {
	return Result{Type: ResultFailure, Rejected: rejected}
}

// FailNoData reports that nothing could be done, usually because no
// provider supports the holder.
func FailNoData() Result {
	return Result{Type: ResultFailure}
}
