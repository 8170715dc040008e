package engine

import (
	"fmt"
	"log/slog"

	"github.com/rinodrops/stagedirector/internal/geometry"
	"github.com/rinodrops/stagedirector/internal/platform"
)

// Controller binds the pure stepping functions to a window-system
// backend. Every action reads the focused window's frame fresh, takes
// an immutable settings and sidebar snapshot, computes the next rect,
// and applies it. Actions with no focused window are silent no-ops.
type Controller struct {
	backend  platform.Backend
	sidebar  func() geometry.Sidebar
	settings func() Settings
	logger   *slog.Logger
}

// NewController creates a controller. sidebar and settings are called
// once per action to obtain point-in-time snapshots.
func NewController(backend platform.Backend, sidebar func() geometry.Sidebar, settings func() Settings, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		backend:  backend,
		sidebar:  sidebar,
		settings: settings,
		logger:   logger,
	}
}

type actionContext struct {
	win      platform.Window
	display  platform.Display
	displays []platform.Display
	usable   geometry.Rect
	settings Settings
}

func (c *Controller) resolve() (actionContext, bool, error) {
	win, ok, err := c.backend.ActiveWindow()
	if err != nil {
		return actionContext{}, false, fmt.Errorf("query active window: %w", err)
	}
	if !ok {
		c.logger.Debug("no focused window, skipping action")
		return actionContext{}, false, nil
	}

	displays, err := c.backend.Displays()
	if err != nil {
		return actionContext{}, false, fmt.Errorf("query displays: %w", err)
	}
	display, ok := platform.DisplayFor(displays, win.Frame)
	if !ok {
		return actionContext{}, false, fmt.Errorf("no displays available")
	}

	settings := c.settings()
	usable := geometry.ResolveUsableArea(display.Frame, c.sidebar(), settings.Gaps)
	return actionContext{
		win:      win,
		display:  display,
		displays: displays,
		usable:   usable,
		settings: settings,
	}, true, nil
}

func (c *Controller) apply(ctx actionContext, frame geometry.Rect) error {
	if err := c.backend.SetFrame(ctx.win.ID, frame); err != nil {
		return fmt.Errorf("set frame: %w", err)
	}
	c.logger.Debug("applied frame",
		"window", ctx.win.ID,
		"x", frame.X, "y", frame.Y, "w", frame.W, "h", frame.H)
	return nil
}

// MoveOrResize performs the edge-directed snap-or-cycle action.
func (c *Controller) MoveOrResize(dir Direction) error {
	ctx, ok, err := c.resolve()
	if err != nil || !ok {
		return err
	}
	others, err := c.neighborFrames(ctx)
	if err != nil {
		return err
	}
	return c.apply(ctx, EdgeStep(ctx.win.Frame, ctx.usable, dir, others, ctx.settings))
}

// MoveOrResizeCorner performs the corner-directed snap-or-cycle action.
func (c *Controller) MoveOrResizeCorner(corner Corner) error {
	ctx, ok, err := c.resolve()
	if err != nil || !ok {
		return err
	}
	return c.apply(ctx, CornerStep(ctx.win.Frame, ctx.usable, corner, ctx.settings))
}

// ToggleMaximize advances the almost-maximize ladder.
func (c *Controller) ToggleMaximize() error {
	ctx, ok, err := c.resolve()
	if err != nil || !ok {
		return err
	}
	return c.apply(ctx, MaximizeStep(ctx.win.Frame, ctx.usable, ctx.settings))
}

// Center repositions the focused window at the usable-area midpoint.
func (c *Controller) Center() error {
	ctx, ok, err := c.resolve()
	if err != nil || !ok {
		return err
	}
	return c.apply(ctx, Centered(ctx.win.Frame, ctx.usable))
}

// UpperCenter centers horizontally with the window in the upper third.
func (c *Controller) UpperCenter() error {
	ctx, ok, err := c.resolve()
	if err != nil || !ok {
		return err
	}
	return c.apply(ctx, UpperCentered(ctx.win.Frame, ctx.usable))
}

// MoveToScreen transfers the focused window to an adjacent display,
// offset +1 for next and -1 for previous in the cyclic ordering.
func (c *Controller) MoveToScreen(offset int) error {
	ctx, ok, err := c.resolve()
	if err != nil || !ok {
		return err
	}
	if len(ctx.displays) < 2 {
		c.logger.Debug("single display, skipping screen move")
		return nil
	}

	current := 0
	for i, d := range ctx.displays {
		if d.ID == ctx.display.ID {
			current = i
			break
		}
	}
	n := len(ctx.displays)
	target := ctx.displays[((current+offset)%n+n)%n]

	return c.apply(ctx, TransferFrame(ctx.win.Frame, ctx.display.Frame, target.Frame))
}

// neighborFrames returns the frames of the other visible,
// non-fullscreen windows on the action's display.
func (c *Controller) neighborFrames(ctx actionContext) ([]geometry.Rect, error) {
	windows, err := c.backend.VisibleWindows(ctx.display.ID)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	frames := make([]geometry.Rect, 0, len(windows))
	for _, w := range windows {
		if w.ID == ctx.win.ID || w.Fullscreen {
			continue
		}
		frames = append(frames, w.Frame)
	}
	return frames, nil
}
