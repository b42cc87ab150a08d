package pdf417scan

import "errors"

// Sentinel errors returned by this package and its image-loading
// collaborators (binarizer, the CLI's bitmap loader).
var (
	// ErrNotFound is returned when a binarizer cannot estimate a
	// reliable black point for an image (its luminance histogram has
	// no two well-separated peaks).
	ErrNotFound = errors.New("pdf417scan: could not binarize image")

	// ErrUnreadableBitmap is returned by image-loading front ends (the
	// CLI wraps PBM and PNG/JPEG/GIF load failures in it) when the input
	// cannot be parsed into a bitmap at all. Per spec §7 this is the one fatal,
	// aborts-before-any-core-invocation failure mode; every other
	// error category is local and non-fatal.
	ErrUnreadableBitmap = errors.New("pdf417scan: unreadable bitmap")
)
