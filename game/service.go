package game

import "reflect"

// Services holds shared objects such as the camera, the keyboard, or the
// logger, keyed by their static type.
type Services struct {
	entries map[reflect.Type]any
}

// NewServices creates an empty container.
func NewServices() *Services {
	return &Services{entries: make(map[reflect.Type]any)}
}

// Provide stores value as the service of type T, replacing any previous one.
// T is usually an interface or pointer type; Provide[input.Keyboard](s, win)
// registers win under the interface rather than its concrete type.
func Provide[T any](s *Services, value T) {
	s.entries[reflect.TypeFor[T]()] = value
}

// Lookup returns the service of type T and whether it was provided. A nil
// interface provided as T is reported as provided with the zero value.
func Lookup[T any](s *Services) (T, bool) {
	entry, ok := s.entries[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	value, _ := entry.(T)
	return value, true
}

// Len returns the number of provided services.
func (s *Services) Len() int {
	return len(s.entries)
}

// Types returns the type names of all provided services.
func (s *Services) Types() []string {
	names := make([]string, 0, len(s.entries))
	for typ := range s.entries {
		names = append(names, typ.String())
	}
	return names
}

// Service provides access to a shared object of type T from inside a
// component. Declare it as a struct field; Game.Register initializes it.
type Service[T any] struct {
	services *Services
	value    T
	resolved bool
}

// NewService creates a Service accessor bound to the given container.
func NewService[T any](services *Services) *Service[T] {
	s := &Service[T]{}
	s.Init(services)
	return s
}

// Init binds the Service to a container.
// This is called automatically by Game.Register.
func (s *Service[T]) Init(services *Services) {
	var zero T
	s.services = services
	s.value = zero
	s.resolved = false
	s.updateCache()
}

// Get returns the service, or the zero value of T if it has not been
// provided yet.
func (s *Service[T]) Get() T {
	if !s.resolved {
		s.updateCache()
	}
	return s.value
}

// Exists reports whether the service has been provided.
func (s *Service[T]) Exists() bool {
	if !s.resolved {
		s.updateCache()
	}
	return s.resolved
}

// updateCache resolves the value once it becomes available
func (s *Service[T]) updateCache() {
	if s.services == nil {
		return
	}
	if value, ok := Lookup[T](s.services); ok {
		s.value = value
		s.resolved = true
	}
}
