package valueobjects

// InstanceDescriptor identifies one selectable graph instance as supplied by
// the instance-listing service. Both fields are opaque and immutable once
// fetched.
type InstanceDescriptor struct {
	ID   string `json:"id"`
	Bolt string `json:"bolt"`
}
