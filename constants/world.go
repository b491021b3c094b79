package constants

// World Dimensions (world units, one per canvas pixel)
const (
	WorldWidth  = 1600.0
	WorldHeight = 1200.0

	// CameraSmoothing is the fraction of the remaining distance the camera covers per tick
	CameraSmoothing = 0.1

	// DefaultViewWidth/Height is the viewport used before the front end reports its size
	DefaultViewWidth  = 800.0
	DefaultViewHeight = 600.0
)
