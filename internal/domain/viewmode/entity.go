// internal/domain/viewmode/entity.go
package viewmode

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCapability = errors.New("capability must be supported or unsupported")
	ErrInvalidPreference = errors.New("preference must be 3d or 2d")
)

// Capability is the outcome of the one-time rendering probe
type Capability int

const (
	CapabilityUnknown Capability = iota
	CapabilitySupported
	CapabilityUnsupported
)

func (c Capability) String() string {
	switch c {
	case CapabilitySupported:
		return "supported"
	case CapabilityUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

func (c Capability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Capability) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "unknown", "":
		*c = CapabilityUnknown
	case "supported":
		*c = CapabilitySupported
	case "unsupported":
		*c = CapabilityUnsupported
	default:
		return ErrInvalidCapability
	}
	return nil
}

// ParseCapability parses a reported probe result. Unknown is not a valid report.
func ParseCapability(s string) (Capability, error) {
	var c Capability
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return CapabilityUnknown, err
	}
	if c == CapabilityUnknown {
		return CapabilityUnknown, ErrInvalidCapability
	}
	return c, nil
}

// Preference is the visitor's chosen presentation
type Preference int

const (
	PreferenceThreeD Preference = iota
	PreferenceTwoD
)

func (p Preference) String() string {
	if p == PreferenceTwoD {
		return "2d"
	}
	return "3d"
}

func (p Preference) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Preference) UnmarshalText(text []byte) error {
	parsed, err := ParsePreference(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePreference accepts "3d"/"2d" and the long forms "threed"/"twod"
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "3d", "threed":
		return PreferenceThreeD, nil
	case "2d", "twod":
		return PreferenceTwoD, nil
	default:
		return PreferenceThreeD, ErrInvalidPreference
	}
}

// Mode is the presentation a product view should use
type Mode int

const (
	ModeLoading Mode = iota
	ModeThreeD
	ModeTwoD
)

func (m Mode) String() string {
	switch m {
	case ModeThreeD:
		return "3d"
	case ModeTwoD:
		return "2d"
	default:
		return "loading"
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// State holds the inputs of a single product view
type State struct {
	Capability    Capability `json:"capability"`
	Preference    Preference `json:"preference"`
	RuntimeFailed bool       `json:"runtime_failed"`
}

// Derive computes the effective mode. Capability and runtime failure always
// win over the preference.
func Derive(s State) Mode {
	switch {
	case s.Capability == CapabilityUnknown:
		return ModeLoading
	case s.Capability == CapabilityUnsupported:
		return ModeTwoD
	case s.RuntimeFailed:
		return ModeTwoD
	case s.Preference == PreferenceTwoD:
		return ModeTwoD
	default:
		return ModeThreeD
	}
}
