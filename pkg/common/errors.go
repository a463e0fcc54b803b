package common

import "fmt"

// StoreError wraps a place-store open or query failure with the
// operation that produced it. No retries happen below this layer;
// the caller decides whether to retry or point at another store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("place store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IncompatibleSchemaError means the store's recorded schema version
// does not match the engine's. Fatal for that store handle; the
// store must be migrated or replaced, never auto-corrected.
type IncompatibleSchemaError struct {
	StoreVersion  string
	EngineVersion string
}

func (e *IncompatibleSchemaError) Error() string {
	return fmt.Sprintf("place store version (%s) is incompatible with engine version (%s) - please migrate the store", e.StoreVersion, e.EngineVersion)
}
