package optional

// Optional carries a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

// Get unpacks the optional in the comma-ok form.
func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
