package entity

// ResourceKind identifies the resource types that take part in the ownership chain.
type ResourceKind string

const (
	ResourceUser         ResourceKind = "user"
	ResourceClient       ResourceKind = "client"
	ResourceProject      ResourceKind = "project"
	ResourceDeliveryNote ResourceKind = "delivery_note"
)

// String returns the string representation of the ResourceKind.
func (k ResourceKind) String() string {
	return string(k)
}

// Principal is the authenticated identity on whose behalf an operation runs.
type Principal struct {
	UserID     uint64
	ResetScope bool
}

// Ancestors carries the parent ids a caller supplies for a nested resource.
// Zero values mean "not supplied".
type Ancestors struct {
	ClientID  uint64
	ProjectID uint64
}
