package config

import (
	"fmt"

	"github.com/jinzhu/copier"

	"museum-viewer/internal/controller"
)

// Settings maps the layout's controls onto controller settings and validates them.
// The painting count is the number of painting textures.
func (l Layout) Settings() (controller.Settings, error) {
	var s controller.Settings
	if err := copier.Copy(&s, &l.Controls); err != nil {
		return controller.Settings{}, fmt.Errorf("config: copy controls: %w", err)
	}
	s.PaintingCount = len(l.Painting.Textures)
	if err := s.Validate(); err != nil {
		return controller.Settings{}, err
	}
	return s, nil
}

// InitialState returns the controller's starting state for this layout.
func (l Layout) InitialState() controller.State {
	st := controller.DefaultState()
	st.Camera = l.Camera.Position
	st.Painting = controller.Painting{Index: 0, Count: len(l.Painting.Textures)}
	st.Statue = controller.Statue{Origin: l.Statue.Position, Position: l.Statue.Position}
	st.Spotlight = controller.Spotlight{Position: l.Spotlight.Position}
	return st
}
