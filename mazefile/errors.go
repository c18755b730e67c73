package mazefile

import "errors"

// MaxDimension caps the logical height and width accepted from a header.
const MaxDimension = 1 << 13

// Sentinel errors for maze files.
var (
	// ErrMalformedHeader indicates the first line is not "height width".
	ErrMalformedHeader = errors.New("mazefile: header must be two integers \"height width\"")
	// ErrDimensions indicates a height or width outside [1, MaxDimension].
	ErrDimensions = errors.New("mazefile: dimensions out of range")
	// ErrTooFewRows indicates the body ended before 2*height+1 rows.
	ErrTooFewRows = errors.New("mazefile: too few rows")
	// ErrTooManyRows indicates non-blank content after the last row.
	ErrTooManyRows = errors.New("mazefile: too many rows")
	// ErrRowTooLong indicates a row wider than 2*width+1.
	ErrRowTooLong = errors.New("mazefile: row too long")
	// ErrMissingStart indicates no 'S' marker.
	ErrMissingStart = errors.New("mazefile: missing start marker")
	// ErrMultipleStarts indicates more than one 'S' marker.
	ErrMultipleStarts = errors.New("mazefile: multiple start markers")
	// ErrStartMisplaced indicates an 'S' on a wall slot rather than a cell.
	ErrStartMisplaced = errors.New("mazefile: start marker not on a cell")
)
