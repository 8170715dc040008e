package hotkeys

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/rinodrops/stagedirector/internal/config"
	"github.com/rinodrops/stagedirector/internal/engine"
	"github.com/rinodrops/stagedirector/internal/platform"
)

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler manages global keyboard shortcuts
type Handler struct {
	xu         *xgbutil.XUtil
	root       xproto.Window
	controller *engine.Controller
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(backend platform.Backend, controller *engine.Controller) *Handler {
	var xu *xgbutil.XUtil
	var root xproto.Window
	if accessor, ok := backend.(x11Accessor); ok {
		xu = accessor.XUtil()
		root = accessor.RootWindow()
	}

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:         xu,
		root:       root,
		controller: controller,
	}
}

// RegisterAll binds every configured action hotkey. Actions with an
// empty key sequence are skipped.
func (h *Handler) RegisterAll(keys config.Hotkeys) error {
	for action, sequence := range keys {
		if sequence == "" {
			continue
		}
		callback, err := h.actionCallback(action)
		if err != nil {
			return err
		}
		if err := h.RegisterFunc(sequence, callback); err != nil {
			return fmt.Errorf("failed to bind %s to %q: %w", action, sequence, err)
		}
	}
	return nil
}

func (h *Handler) actionCallback(action string) (func(), error) {
	run := func(name string, do func() error) func() {
		return func() {
			if err := do(); err != nil {
				log.Printf("Action %s failed: %v", name, err)
			}
		}
	}

	switch action {
	case "left", "right", "top", "bottom":
		dir, err := engine.ParseDirection(action)
		if err != nil {
			return nil, err
		}
		return run(action, func() error { return h.controller.MoveOrResize(dir) }), nil
	case "maximize":
		return run(action, h.controller.ToggleMaximize), nil
	case "center":
		return run(action, h.controller.Center), nil
	case "upper-center":
		return run(action, h.controller.UpperCenter), nil
	case "next-screen":
		return run(action, func() error { return h.controller.MoveToScreen(1) }), nil
	case "prev-screen":
		return run(action, func() error { return h.controller.MoveToScreen(-1) }), nil
	}

	if rest, ok := strings.CutPrefix(action, "corner"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil {
			corner, err := engine.ParseCorner(n)
			if err != nil {
				return nil, err
			}
			return run(action, func() error { return h.controller.MoveOrResizeCorner(corner) }), nil
		}
	}

	return nil, fmt.Errorf("unknown hotkey action %q", action)
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
