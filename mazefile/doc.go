// Package mazefile reads and writes the plain-text maze format.
//
// Format:
//
//	3 3          <- header: logical height and width
//	#######      <- 2*height+1 rows of up to 2*width+1 characters
//	#S    #
//	# ### #      ' ' open, 'S' start (exactly one), 'F' goal (any number),
//	#   # #      any other character is a wall
//	# # # #
//	# #  F#
//	#######
//
// Short rows are padded with walls. Trailing blank lines and "\r\n" line
// endings are accepted. The start must sit on a logical cell (odd x and y).
//
// Errors:
//
//   - ErrMalformedHeader: header is not two integers.
//   - ErrDimensions:      height or width is not in [1, MaxDimension].
//   - ErrTooFewRows / ErrTooManyRows / ErrRowTooLong: body does not fit.
//   - ErrMissingStart / ErrMultipleStarts / ErrStartMisplaced: bad 'S'.
package mazefile
