package cli

import (
	"fmt"

	"github.com/vkotov/stride/internal/models"
)

type InitCmd struct{}

// Run persists a freshly normalized document so the storage location
// exists on disk. Running against existing storage is harmless: load
// merges, save writes the same data back.
func (c *InitCmd) Run(ctx *Context) error {
	if _, err := ctx.open(); err != nil {
		return err
	}
	ctx.App.Dispatch(func(d *models.Document) {})
	fmt.Printf("Initialized storage at %s\n", ctx.ConfigPath)
	return nil
}
