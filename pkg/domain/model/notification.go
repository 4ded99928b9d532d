package model

import (
	"math/bits"
	"strings"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// NotificationFlag is a named bit of the email notification mask
type NotificationFlag struct {
	Name    string `yaml:"name"`
	Bit     uint64 `yaml:"bit"`
	Default bool   `yaml:"default"` // Part of the default selection
}

// NotificationMask is the integer encoding of a set of enabled flags.
// A zero mask disables every email notification.
type NotificationMask uint64

// Encode returns the bitwise OR of the given flags
func Encode(flags ...NotificationFlag) NotificationMask {
	var mask NotificationMask
	for _, f := range flags {
		mask |= NotificationMask(f.Bit)
	}
	return mask
}

// PopCount returns the number of set bits
func (m NotificationMask) PopCount() int {
	return bits.OnesCount64(uint64(m))
}

// Has reports whether every bit of the flag is set in the mask
func (m NotificationMask) Has(f NotificationFlag) bool {
	return f.Bit != 0 && uint64(m)&f.Bit == f.Bit
}

// Int returns the mask as the plain integer sent to the API
func (m NotificationMask) Int() int {
	return int(m)
}

// FlagTable is the flag-to-bit mapping of one remote API revision.
// The mapping is configuration: it has changed between service versions.
type FlagTable struct {
	Flags []NotificationFlag `yaml:"flags"`
}

// Validate checks that names are unique and bits are disjoint powers of two
func (t *FlagTable) Validate() error {
	if len(t.Flags) == 0 {
		return goerr.New("at least one notification flag is required", goerr.T(ErrTagInvalidConfig))
	}

	names := make(map[string]bool)
	var seen uint64
	for i, f := range t.Flags {
		if f.Name == "" {
			return goerr.New("notification flag name is required",
				goerr.V("index", i),
				goerr.T(ErrTagInvalidConfig))
		}
		key := strings.ToLower(f.Name)
		if names[key] {
			return goerr.New("duplicate notification flag name",
				goerr.V("name", f.Name),
				goerr.T(ErrTagInvalidConfig))
		}
		names[key] = true

		if f.Bit == 0 || f.Bit&(f.Bit-1) != 0 {
			return goerr.New("notification flag bit must be a power of two",
				goerr.V("name", f.Name),
				goerr.V("bit", f.Bit),
				goerr.T(ErrTagInvalidConfig))
		}
		if seen&f.Bit != 0 {
			return goerr.New("notification flag bit is used more than once",
				goerr.V("name", f.Name),
				goerr.V("bit", f.Bit),
				goerr.T(ErrTagInvalidConfig))
		}
		seen |= f.Bit
	}

	return nil
}

// FindFlag finds a flag by name, ignoring case
func (t *FlagTable) FindFlag(name string) *NotificationFlag {
	for _, f := range t.Flags {
		if strings.EqualFold(f.Name, name) {
			result := f
			return &result
		}
	}
	return nil
}

// EncodeNames encodes the named flags
func (t *FlagTable) EncodeNames(names ...string) (NotificationMask, error) {
	selected := make([]NotificationFlag, 0, len(names))
	for _, name := range names {
		f := t.FindFlag(name)
		if f == nil {
			return 0, goerr.New("unknown notification flag",
				goerr.V("name", name),
				goerr.T(ErrTagInvalidConfig))
		}
		selected = append(selected, *f)
	}
	return Encode(selected...), nil
}

// Defaults returns the flags marked as default, in table order
func (t *FlagTable) Defaults() []NotificationFlag {
	var result []NotificationFlag
	for _, f := range t.Flags {
		if f.Default {
			result = append(result, f)
		}
	}
	return result
}

// DefaultMask encodes the default selection
func (t *FlagTable) DefaultMask() NotificationMask {
	return Encode(t.Defaults()...)
}

// Decode returns the table flags enabled in the mask, in table order
func (t *FlagTable) Decode(mask NotificationMask) []NotificationFlag {
	var result []NotificationFlag
	for _, f := range t.Flags {
		if mask.Has(f) {
			result = append(result, f)
		}
	}
	return result
}

// Names returns the names of the given flags
func Names(flags []NotificationFlag) []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Name)
	}
	return names
}

// DefaultFlagTable returns the built-in mapping for an API revision.
// The legacy user endpoint and the corrected settings endpoint disagree on bit values.
func DefaultFlagTable(revision types.APIRevision) (*FlagTable, error) {
	switch revision {
	case types.APIRevisionUser:
		return &FlagTable{Flags: []NotificationFlag{
			{Name: "Approved", Bit: 64, Default: true},
			{Name: "Declined", Bit: 32, Default: true},
			{Name: "Available", Bit: 128, Default: true},
		}}, nil
	case types.APIRevisionSettings:
		return &FlagTable{Flags: []NotificationFlag{
			{Name: "Approved", Bit: 2, Default: true},
			{Name: "Declined", Bit: 4, Default: true},
			{Name: "Available", Bit: 16, Default: true},
		}}, nil
	default:
		return nil, goerr.New("unknown API revision",
			goerr.V("revision", revision),
			goerr.T(ErrTagInvalidConfig))
	}
}
