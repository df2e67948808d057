package encoding

// Optional is an item of a nullable column.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present item holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent item.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// setCounter is implemented by validity sources that can skip while counting
// the present entries, such as HybridBitmapDecoder.
type setCounter interface {
	CountSet(n int) (skipped, set int)
}

// OptionalValues merges a validity stream with the stream of non-null values.
//
// For each validity entry it yields the next value when the entry is true and
// an absent item otherwise, so values is advanced only for present entries.
// The result has exactly as many items as validity.
//
// values is expected to hold one item per true validity entry. If it runs out
// early the remaining present entries are yielded as absent instead of failing.
//
// Note: OptionalValues is NOT thread-safe.
type OptionalValues[T any] struct {
	validity Iterator[bool]
	values   Iterator[T]
}

var (
	_ Iterator[Optional[int]] = (*OptionalValues[int])(nil)
	_ Skipper                 = (*OptionalValues[int])(nil)
)

// NewOptionalValues creates the merge of validity and values.
func NewOptionalValues[T any](validity Iterator[bool], values Iterator[T]) *OptionalValues[T] {
	return &OptionalValues[T]{validity: validity, values: values}
}

// Next returns the next item.
func (o *OptionalValues[T]) Next() (Optional[T], bool) {
	valid, ok := o.validity.Next()
	if !ok {
		return Optional[T]{}, false
	}

	if !valid {
		return Optional[T]{}, true
	}

	v, ok := o.values.Next()

	return Optional[T]{Value: v, Valid: ok}, true
}

// Len returns the number of items left, which is the validity length.
func (o *OptionalValues[T]) Len() int {
	return o.validity.Len()
}

// Skip advances past up to n items, skipping one value per present entry.
func (o *OptionalValues[T]) Skip(n int) int {
	if n <= 0 {
		return 0
	}

	if c, ok := o.validity.(setCounter); ok {
		skipped, set := c.CountSet(n)
		Skip(o.values, set)

		return skipped
	}

	skipped, set := 0, 0
	for skipped < n {
		valid, ok := o.validity.Next()
		if !ok {
			break
		}
		if valid {
			set++
		}
		skipped++
	}
	Skip(o.values, set)

	return skipped
}
