package transform

import (
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// DealTransform defines the interface for all deal transformations.
// Transforms are composable operations that derive a variant of a deal,
// used by comparisons, the solver and sensitivity sweeps.
type DealTransform interface {
	// Apply returns a new modified deal; the base deal is never mutated.
	Apply(base *domain.Deal) (*domain.Deal, error)

	// Name returns a short identifier for this transform (e.g., "adjust_rente").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform parameters against base without applying it.
	Validate(base *domain.Deal) error
}

// ApplyTransforms applies a sequence of transforms to a base deal.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base *domain.Deal, transforms []DealTransform) (*domain.Deal, error) {
	if base == nil {
		return nil, fmt.Errorf("base deal cannot be nil")
	}

	if len(transforms) == 0 {
		return base.Clone(), nil
	}

	current := base
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

func requireBase(name string, base *domain.Deal) error {
	if base == nil {
		return NewTransformError(name, "validate", "base deal cannot be nil", nil)
	}
	return nil
}
