// internal/domain/viewmode/controller.go
package viewmode

// Controller drives the view state of one product view. Not safe for
// concurrent use.
type Controller struct {
	state State
}

// NewController starts in Loading with a 3D preference
func NewController() *Controller {
	return &Controller{}
}

// Restore resumes a controller from persisted state
func Restore(s State) *Controller {
	if s.Capability < CapabilityUnknown || s.Capability > CapabilityUnsupported {
		s.Capability = CapabilityUnknown
	}
	if s.Preference != PreferenceTwoD {
		s.Preference = PreferenceThreeD
	}
	return &Controller{state: s}
}

// ReportCapability records the probe result. Only the first report leaves
// Unknown; later reports are ignored.
func (c *Controller) ReportCapability(result Capability) {
	if c.state.Capability != CapabilityUnknown {
		return
	}
	if result != CapabilitySupported && result != CapabilityUnsupported {
		return
	}
	c.state.Capability = result
}

// SetPreference stores the visitor's choice. It only affects the mode once
// capability is Supported and no runtime failure has occurred.
func (c *Controller) SetPreference(p Preference) {
	if p != PreferenceThreeD && p != PreferenceTwoD {
		return
	}
	c.state.Preference = p
}

// ReportRuntimeFailure downgrades the view to 2D for the rest of the session
func (c *Controller) ReportRuntimeFailure() {
	c.state.RuntimeFailed = true
}

func (c *Controller) EffectiveMode() Mode {
	return Derive(c.state)
}

// ToggleAvailable reports whether the 3D/2D toggle should be offered
func (c *Controller) ToggleAvailable() bool {
	return c.state.Capability == CapabilitySupported
}

func (c *Controller) State() State {
	return c.state
}
