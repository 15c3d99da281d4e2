// widgets/widget_test.go
package widgets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	dashgate_errors "github.com/rohanverma/dashgate/errors"
	"github.com/rohanverma/dashgate/widgets"
)

func TestRegistry(t *testing.T) {
	widgets.Register("welcome", widgets.NewWelcomeFactory())

	t.Run("NewBuildsRegisteredType", func(t *testing.T) {
		widget, err := widgets.New("welcome")
		assert.NoError(t, err)
		assert.Equal(t, "Welcome", widget.Title())

		content, err := widget.RenderContent(context.Background())
		assert.NoError(t, err)
		assert.NotEmpty(t, content)
	})

	t.Run("NewRejectsUnknownType", func(t *testing.T) {
		_, err := widgets.New("telemetry")
		assert.ErrorIs(t, err, dashgate_errors.ErrUnknownWidgetType)
	})

	t.Run("Registered", func(t *testing.T) {
		assert.True(t, widgets.Registered("welcome"))
		assert.False(t, widgets.Registered("telemetry"))
	})

	t.Run("TypesListsRegistrations", func(t *testing.T) {
		assert.Contains(t, widgets.Types(), "welcome")
	})

	t.Run("FactoryBuildsFreshValues", func(t *testing.T) {
		first, err := widgets.New("welcome")
		assert.NoError(t, err)
		second, err := widgets.New("welcome")
		assert.NoError(t, err)
		assert.NotSame(t, first, second)
	})
}
