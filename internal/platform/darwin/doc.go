// Package darwin provides the macOS backends for window enumeration and
// capture. Everything shells out to tools that own the OS-level work:
// getwindowid for enumeration, osascript (System Events) for visible apps,
// and screencapture for rasterizing a window to disk.
package darwin
