// widgets/welcome.go
package widgets

import "context"

// WelcomeWidget shows a static greeting.
type WelcomeWidget struct{}

func NewWelcomeFactory() Factory {
	return func() Widget {
		return &WelcomeWidget{}
	}
}

func (w *WelcomeWidget) Title() string {
	return "Welcome"
}

func (w *WelcomeWidget) Height() int {
	return 1
}

func (w *WelcomeWidget) Width() int {
	return 2
}

func (w *WelcomeWidget) RenderContent(ctx context.Context) (string, error) {
	return `<div class="widget-welcome"><p>Welcome to your dashboard. Add widgets to get started.</p></div>`, nil
}

func (w *WelcomeWidget) EventData() map[string]interface{} {
	return map[string]interface{}{}
}
