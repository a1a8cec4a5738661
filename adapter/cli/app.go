// Package cli contains the cobra command tree for daybrief.
package cli

import (
	"github.com/daybrief/daybrief/internal/app"
)

var container *app.Container

// SetContainer sets the application container used by the commands.
func SetContainer(c *app.Container) {
	container = c
}

// GetContainer returns the application container, or nil in limited mode.
func GetContainer() *app.Container {
	return container
}
