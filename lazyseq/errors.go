package lazyseq

import (
	"fmt"

	"github.com/on-the-ground/lazyseq/indexrange"
	"github.com/on-the-ground/lazyseq/pipeline"
)

// Sentinel errors returned by sequence construction and access.
var (
	// ErrInvalidArgument is the root of every construction error.
	ErrInvalidArgument = pipeline.ErrInvalidArgument

	// ErrNotCallable is returned when a map func is nil or not unary.
	ErrNotCallable = pipeline.ErrNotCallable

	// ErrNotSequence is returned when the wrapped value lacks length and indexed read.
	ErrNotSequence = fmt.Errorf("%w: not a sequence", ErrInvalidArgument)

	// ErrIndexOutOfRange is returned for integer access outside [0, Len()).
	ErrIndexOutOfRange = indexrange.ErrIndexOutOfRange

	// ErrZeroStep is returned when slicing with a step of 0.
	ErrZeroStep = indexrange.ErrZeroStep

	// ErrInputType is returned by At when an item is not assignable to a map
	// func's parameter type.
	ErrInputType = pipeline.ErrInputType
)
