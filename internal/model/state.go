package model

import "fmt"

// State is a tagged variant over the four phases of a request: Idle, Loading,
// Success and Failure. The marker method is unexported so the set of variants
// is closed to this package.
type State[T any] interface {
	Status() FetchStatus
	isState()
}

// Idle is the state before any request was issued
type Idle[T any] struct{}

// Loading is the state while a request is in flight
type Loading[T any] struct{}

// Success carries the data of a settled request
type Success[T any] struct {
	Data T
}

// Failure carries the error of a settled request. Err is either a typed
// payload error (*APIError, *ValidationError, *UnhandledResponseError) or a
// transport failure.
type Failure[T any] struct {
	Err error
}

func (Idle[T]) Status() FetchStatus    { return FetchStatusIdle }
func (Loading[T]) Status() FetchStatus { return FetchStatusLoading }
func (Success[T]) Status() FetchStatus { return FetchStatusSuccess }
func (Failure[T]) Status() FetchStatus { return FetchStatusError }

func (Idle[T]) isState()    {}
func (Loading[T]) isState() {}
func (Success[T]) isState() {}
func (Failure[T]) isState() {}

// StatusOf returns the status of s, treating a nil state as idle
func StatusOf[T any](s State[T]) FetchStatus {
	if s == nil {
		return FetchStatusIdle
	}
	return s.Status()
}

// Match dispatches on the variant of s. Every variant needs a handler, so a
// caller cannot forget one. A nil state is matched as idle.
func Match[T, R any](
	s State[T],
	onIdle func() R,
	onLoading func() R,
	onSuccess func(T) R,
	onFailure func(error) R,
) R {
	switch v := s.(type) {
	case nil, Idle[T]:
		return onIdle()
	case Loading[T]:
		return onLoading()
	case Success[T]:
		return onSuccess(v.Data)
	case Failure[T]:
		return onFailure(v.Err)
	default:
		// pointer variants are never constructed by this module
		panic(fmt.Sprintf("model: unexpected state %T", s))
	}
}

// DataOf returns the success payload of s, if any
func DataOf[T any](s State[T]) (T, bool) {
	if v, ok := s.(Success[T]); ok {
		return v.Data, true
	}
	var zero T
	return zero, false
}

// ErrOf returns the failure error of s, or nil
func ErrOf[T any](s State[T]) error {
	if v, ok := s.(Failure[T]); ok {
		return v.Err
	}
	return nil
}
