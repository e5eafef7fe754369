// Package reader drives the SDL3 Joystick API. It is the only package
// that links SDL; everything below it (gamepad, db, mapping) stays pure
// so it can be built and tested without the shared library installed.
package reader

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/guid"
)

const (
	deadzone    = 0.05
	pollDelayNS = 16_000_000 // ~60Hz
)

// Resolver supplies a compiled mapping profile for a device. Implemented
// by the mapping database; the reader falls back to GenericProfile when
// it returns nil.
type Resolver interface {
	Resolve(id guid.GUID, name string) *gamepad.Profile
}

type joystickInfo struct {
	joystick *sdl.Joystick
	profile  *gamepad.Profile
	guid     guid.GUID
	name     string
	id       sdl.JoystickID
}

// Reader reads raw input from the SDL3 Joystick API and emits normalized
// state changes, applying the mapping profile resolved for each device.
//
// joysticks, activeID, hasActive, profile pointers and the state fields
// are shared between the SDL loop and RefreshProfiles/CurrentState; all
// of them are guarded by mu.
type Reader struct {
	resolver  Resolver
	state     gamepad.GamepadState
	prevState gamepad.GamepadState
	joysticks map[sdl.JoystickID]*joystickInfo
	activeID  sdl.JoystickID // the first connected joystick
	hasActive bool
	changes   chan gamepad.GamepadState
	mu        sync.RWMutex
}

func NewReader(resolver Resolver) *Reader {
	return &Reader{
		resolver:  resolver,
		joysticks: make(map[sdl.JoystickID]*joystickInfo),
		changes:   make(chan gamepad.GamepadState, 64),
	}
}

// Changes returns the channel on which state changes are sent.
func (r *Reader) Changes() <-chan gamepad.GamepadState {
	return r.changes
}

// CurrentState returns a snapshot of the current gamepad state.
func (r *Reader) CurrentState() gamepad.GamepadState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// RefreshProfiles re-resolves the mapping profile of every open device.
// Called after the mapping database is reloaded.
func (r *Reader) RefreshProfiles() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, info := range r.joysticks {
		info.profile = r.resolveProfile(info.guid, info.name)
	}
	if r.hasActive {
		if info, ok := r.joysticks[r.activeID]; ok {
			r.state.Mapping = info.profile.Name
		}
	}
}

func (r *Reader) resolveProfile(id guid.GUID, name string) *gamepad.Profile {
	if p := r.resolver.Resolve(id, name); p != nil {
		return p
	}
	return gamepad.GenericProfile()
}

// Run initializes SDL and runs the main event+polling loop on the
// current thread. Must be called from a goroutine with LockOSThread.
func (r *Reader) Run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !sdl.Init(sdl.InitJoystick) {
		log.Fatalf("SDL Init failed: %s", sdl.GetError())
	}
	defer sdl.Quit()

	log.Println("SDL3 Joystick subsystem initialized")

	// Check for already-connected joysticks
	ids := sdl.GetJoysticks()
	for _, id := range ids {
		r.openJoystick(id)
	}

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		default:
		}

		r.processEvents()
		r.pollState()
		sdl.DelayNS(pollDelayNS)
	}
}

func (r *Reader) processEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			devEvent := event.JDevice()
			r.openJoystick(devEvent.Which)

		case sdl.EventJoystickRemoved:
			devEvent := event.JDevice()
			r.removeJoystick(devEvent.Which)
		}
	}
}

func (r *Reader) openJoystick(instanceID sdl.JoystickID) {
	r.mu.RLock()
	_, exists := r.joysticks[instanceID]
	r.mu.RUnlock()
	if exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		log.Printf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	jsID := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)

	// SDL synthesizes GUIDs from the reported ids the same way; the CRC
	// and version fields stay zero here, the database matches on
	// vendor/product when the full GUID misses.
	id := guid.FromValues(guid.BusUSB, 0, vendorID, productID, 0)
	profile := r.resolveProfile(id, name)

	info := &joystickInfo{
		joystick: js,
		profile:  profile,
		guid:     id,
		name:     name,
		id:       jsID,
	}

	numAxes := sdl.GetNumJoystickAxes(js)
	numButtons := sdl.GetNumJoystickButtons(js)
	numHats := sdl.GetNumJoystickHats(js)

	log.Printf("Joystick connected: %s (VID=%04X PID=%04X) mapping=%s axes=%d buttons=%d hats=%d",
		name, vendorID, productID, profile.Name, numAxes, numButtons, numHats)

	r.mu.Lock()
	r.joysticks[jsID] = info

	// Use the first connected joystick as active
	becameActive := !r.hasActive
	if becameActive {
		r.activeID = jsID
		r.hasActive = true
		r.state.Connected = true
		r.state.Name = name
		r.state.GUID = id.String()
		r.state.Mapping = profile.Name
	}
	r.mu.Unlock()

	if becameActive {
		log.Printf("Active joystick set: %s (ID=%d)", name, jsID)
		r.emitState()
	}
}

func (r *Reader) removeJoystick(instanceID sdl.JoystickID) {
	r.mu.Lock()
	info, exists := r.joysticks[instanceID]
	if !exists {
		r.mu.Unlock()
		return
	}
	delete(r.joysticks, instanceID)

	emit := false
	if r.hasActive && r.activeID == instanceID {
		r.hasActive = false
		if len(r.joysticks) == 0 {
			r.state = gamepad.GamepadState{}
			emit = true
		} else {
			// Promote the next available joystick
			for id, js := range r.joysticks {
				if sdl.JoystickConnected(js.joystick) {
					r.activeID = id
					r.hasActive = true
					log.Printf("Active joystick switched to: %s (ID=%d)", js.name, id)

					r.state.Connected = true
					r.state.Name = js.name
					r.state.GUID = js.guid.String()
					r.state.Mapping = js.profile.Name

					emit = true
					break
				}
			}
		}
	}
	r.mu.Unlock()

	log.Printf("Joystick disconnected: %s", info.name)
	sdl.CloseJoystick(info.joystick)
	if emit {
		r.emitState()
	}
}

func (r *Reader) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, info := range r.joysticks {
		sdl.CloseJoystick(info.joystick)
		delete(r.joysticks, id)
	}
}

func (r *Reader) pollState() {
	r.mu.RLock()
	if !r.hasActive {
		r.mu.RUnlock()
		return
	}
	info, exists := r.joysticks[r.activeID]
	if !exists {
		r.mu.RUnlock()
		return
	}
	js := info.joystick
	profile := info.profile
	id := info.guid
	name := info.name
	r.mu.RUnlock()

	if !sdl.JoystickConnected(js) {
		return
	}

	state := gamepad.GamepadState{
		Connected: true,
		GUID:      id.String(),
		Mapping:   profile.Name,
		Name:      name,
	}

	numAxes := sdl.GetNumJoystickAxes(js)
	for _, ab := range profile.Axes {
		if ab.Index >= numAxes {
			continue
		}
		raw := sdl.GetJoystickAxis(js, ab.Index)
		val := ab.Apply(gamepad.NormalizeAxis(raw))
		val = gamepad.ApplyDeadzone(val, deadzone)
		state.ApplyAxis(ab.Target, val)
	}

	numButtons := sdl.GetNumJoystickButtons(js)
	for _, bb := range profile.Buttons {
		if bb.Index >= numButtons {
			continue
		}
		pressed := sdl.GetJoystickButton(js, bb.Index)
		state.ApplyButton(bb.Target, pressed)
	}

	numHats := sdl.GetNumJoystickHats(js)
	for _, hb := range profile.Hats {
		if hb.Hat >= numHats {
			continue
		}
		hat := sdl.GetJoystickHat(js, hb.Hat)
		state.ApplyButton(hb.Target, uint16(hat)&hb.Direction != 0)
	}

	// Compare with previous state and emit if changed
	r.mu.Lock()
	delta := gamepad.ComputeDelta(r.prevState, state)
	if !delta.IsEmpty() {
		r.state = state
		r.prevState = state
		r.mu.Unlock()
		r.emitState()
	} else {
		r.mu.Unlock()
	}
}

func (r *Reader) emitState() {
	r.mu.RLock()
	s := r.state
	r.mu.RUnlock()

	select {
	case r.changes <- s:
	default:
		// Drop if channel is full to avoid blocking the SDL thread
	}
}
