// Package ports defines the interfaces the application layer depends on.
// Implementations live in the infrastructure layer.
package ports

import (
	"context"

	"graphbench/domain/core/valueobjects"
)

// Schema is the raw label and relation-type vocabulary of one instance
type Schema struct {
	Labels   []string
	RelTypes []string
}

// GraphServiceClient is the contract of the remote computation service.
// All calls are fallible network operations; none are retried automatically.
type GraphServiceClient interface {
	// ListInstances returns the selectable graph instances
	ListInstances(ctx context.Context) ([]valueobjects.InstanceDescriptor, error)

	// SelectInstance activates an instance on the remote service.
	// The acknowledgement body is ignored beyond success/failure.
	SelectInstance(ctx context.Context, instanceID string) error

	// FetchSchema returns the label and relation-type vocabulary of an instance
	FetchSchema(ctx context.Context, instanceID string) (Schema, error)

	// FetchNodes returns the node name list of an instance
	FetchNodes(ctx context.Context, instanceID string) ([]string, error)

	// ComputeMeasures requests the given measures for a constraint list and
	// returns the summary mapping, which may omit entries or be nil.
	ComputeMeasures(ctx context.Context, constraints, requested []string) (map[string]float64, error)
}

// DocumentArchive stores exported constraint documents
type DocumentArchive interface {
	// Save stores a document and returns its assigned name
	Save(document []byte) (string, error)

	// List returns the stored document names, sorted
	List() ([]string, error)

	// Get returns a stored document by name
	Get(name string) ([]byte, error)
}
