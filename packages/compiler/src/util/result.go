package util

// Result is the outcome of a compile step: either a value or an error.
// The zero Result is Ok with the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil error is a programming error.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("util.Err: nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a value
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result holds an error
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Unwrap returns the value and error as a Go pair
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Value returns the value, panicking if the result is an error
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("util.Result: Value called on Err: " + r.err.Error())
	}
	return r.value
}

// Error returns the error, or nil for an Ok result
func (r Result[T]) Error() error {
	return r.err
}

// AndThen chains a step that may itself fail. It does not run f once r is an error.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// MapOk transforms the value of an Ok result
func MapOk[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// MapErr transforms the error of an Err result
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// All collects results of one type. Every result has already been evaluated;
// the first error in argument order wins.
func All[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Result[[]T]{err: r.err}
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Pair holds the values of two results
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the values of three results
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the values of four results
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// All2 combines two results, returning the first error in argument order
func All2[A, B any](a Result[A], b Result[B]) Result[Pair[A, B]] {
	if err := firstError(a.err, b.err); err != nil {
		return Result[Pair[A, B]]{err: err}
	}
	return Ok(Pair[A, B]{a.value, b.value})
}

// All3 combines three results, returning the first error in argument order
func All3[A, B, C any](a Result[A], b Result[B], c Result[C]) Result[Triple[A, B, C]] {
	if err := firstError(a.err, b.err, c.err); err != nil {
		return Result[Triple[A, B, C]]{err: err}
	}
	return Ok(Triple[A, B, C]{a.value, b.value, c.value})
}

// All4 combines four results, returning the first error in argument order
func All4[A, B, C, D any](a Result[A], b Result[B], c Result[C], d Result[D]) Result[Quad[A, B, C, D]] {
	if err := firstError(a.err, b.err, c.err, d.err); err != nil {
		return Result[Quad[A, B, C, D]]{err: err}
	}
	return Ok(Quad[A, B, C, D]{a.value, b.value, c.value, d.value})
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ResultArray accumulates results and collapses them with All
type ResultArray[T any] struct {
	results []Result[T]
}

// Add appends one result
func (a *ResultArray[T]) Add(r Result[T]) {
	a.results = append(a.results, r)
}

// ToArray collapses the accumulated results
func (a *ResultArray[T]) ToArray() Result[[]T] {
	return All(a.results...)
}
