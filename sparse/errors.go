package sparse

import "errors"

var (
	// ErrShape indicates operands that disagree on a required shared axis.
	ErrShape = errors.New("sparse: shape mismatch")
	// ErrIndexRange indicates a row, column or linear index outside the
	// matrix bounds. Direct accessors panic with this error wrapped;
	// construction and extraction return it.
	ErrIndexRange = errors.New("sparse: index out of range")
	// ErrLength indicates a flat construction list whose element count does
	// not equal rows*cols.
	ErrLength = errors.New("sparse: flat list length mismatch")
	// ErrCollision indicates two construction sources that disagree on the
	// value of the same cell.
	ErrCollision = errors.New("sparse: entry collision")
	// ErrAutosize indicates an autosizing request with only one dimension
	// left open. Pass Auto for both dimensions or for neither.
	ErrAutosize = errors.New("sparse: ambiguous autosize request")
)
