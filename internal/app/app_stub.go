//go:build !ebiten

package app

import (
	"context"

	"github.com/pkg/errors"

	"lifeview/internal/core"
	"lifeview/internal/session"
)

// RunWindow reports that the window backend was not compiled in.
func RunWindow(context.Context, Config, *core.Grid, session.Options) (*session.Stats, error) {
	return nil, errors.New("the window backend requires building with the 'ebiten' tag; try --backend terminal")
}
