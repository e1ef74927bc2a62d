package wmediumd

//
// Sentinel errors shared across the package: one Err-prefixed
// package-level var per failure mode. Errors local to a single file
// (ErrMacAddrSyntax, ErrFrameTooShort, ErrAttrMissing, ErrAttrLength)
// stay declared next to the code that returns them.
//

import "errors"

// ErrStationUnknown indicates an operation referenced a MAC address
// that was never registered.
var ErrStationUnknown = errors.New("wmediumd: unknown station")

// ErrStationDuplicate indicates a configuration listed the same
// station address twice.
var ErrStationDuplicate = errors.New("wmediumd: duplicate station address")

// ErrConfigInvalid indicates a configuration file failed validation.
var ErrConfigInvalid = errors.New("wmediumd: invalid configuration")

// ErrFamilyNotRegistered indicates the mac80211_hwsim generic-netlink
// family is not present, meaning the kernel module is not loaded.
var ErrFamilyNotRegistered = errors.New("wmediumd: mac80211_hwsim family not registered")
