package platform

// Enumerator lists raw window descriptor lines for an application name.
// A name the OS does not recognize yields an empty slice and a nil error;
// errors are reserved for the enumerator itself failing.
type Enumerator interface {
	ListWindows(appName string) ([]string, error)
}

// AppLister reports the names of currently visible application processes.
type AppLister interface {
	VisibleApps() ([]string, error)
}

// Capturer rasterizes a window to an image file on disk.
type Capturer interface {
	CaptureWindow(windowID, destPath string) error
}
