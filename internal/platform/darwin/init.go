//go:build darwin

package darwin

import (
	"github.com/mj1618/screencap/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Enumerator: &WindowEnumerator{},
			AppLister:  &SystemEventsLister{},
			Capturer:   &ScreenCapturer{},
		}, nil
	}
}
