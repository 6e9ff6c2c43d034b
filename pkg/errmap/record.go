package errmap

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a type of the classified toolchain error.
type Kind byte

// Known error kinds. Generic is used for any non-empty diagnostic that
// doesn't match a more specific pattern.
const (
	Generic Kind = iota
	AccountNotExist
	WalletExists
	WalletNotExist
	InvalidPassword
	LowRam
)

// Sentinel errors matching records of the corresponding kind via errors.Is.
var (
	ErrGeneric         = errors.New("toolchain error")
	ErrAccountNotExist = errors.New("account does not exist")
	ErrWalletExists    = errors.New("wallet already exists")
	ErrWalletNotExist  = errors.New("wallet does not exist")
	ErrInvalidPassword = errors.New("invalid wallet password")
	ErrLowRam          = errors.New("not enough RAM")
)

var kindNames = map[Kind]string{
	Generic:         "Error",
	AccountNotExist: "AccountNotExist",
	WalletExists:    "WalletExists",
	WalletNotExist:  "WalletNotExist",
	InvalidPassword: "InvalidPassword",
	LowRam:          "LowRam",
}

var kindErrors = map[Kind]error{
	Generic:         ErrGeneric,
	AccountNotExist: ErrAccountNotExist,
	WalletExists:    ErrWalletExists,
	WalletNotExist:  ErrWalletNotExist,
	InvalidPassword: ErrInvalidPassword,
	LowRam:          ErrLowRam,
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// ParseKind returns the Kind with the given name, case-insensitive. Both
// "Error" and "Generic" denote the Generic kind.
func ParseKind(s string) (Kind, error) {
	if strings.EqualFold(s, "generic") {
		return Generic, nil
	}
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown error kind %q", s)
}

// Record is a classified toolchain error. It carries a human-readable
// message and, for LowRam, the RAM figures extracted from the raw text.
type Record struct {
	Kind Kind
	// Msg is the formatted message. It can be replaced by the reporter after
	// the error is surfaced.
	Msg string
	// Raw is the original diagnostic text the record was built from.
	Raw string

	// NeedsKB and DeficiencyKB are only set for LowRam.
	NeedsKB      int64
	DeficiencyKB int64
}

// Error implements the error interface.
func (r *Record) Error() string {
	return r.Msg
}

// Is allows to match records against the package's sentinel errors.
func (r *Record) Is(target error) bool {
	return kindErrors[r.Kind] == target
}
