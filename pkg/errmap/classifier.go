/*
Package errmap classifies raw diagnostics printed by the blockchain toolchain
into a small set of typed records.

Classification is an ordered list of substring rules, the first matching rule
wins. Some known warnings are benign and classify to nil, as does an empty
string. Anything else not matched explicitly becomes a Generic record
wrapping the raw text.
*/
package errmap

import (
	"regexp"
	"strconv"
	"strings"
)

// Markers of the toolchain diagnostics recognized by the classifier.
const (
	AccountNotExistMarker = "main.cpp:3008"
	LowRamMarker          = "Error 3080001: Account using more than allotted RAM"
	LocalExecutionMarker  = "transaction executed locally, but may not be"
	WalletExistsMarker    = "Wallet already exists"
	WalletNotExistMarker  = "Error 3120002: Nonexistent wallet"
	InvalidPasswordMarker = "Invalid wallet password"
	KeyExistsMarker       = "Error 3120008: Key already exists"
)

var ramFigures = regexp.MustCompile(`needs\s+(\d+)\s+bytes\s+has\s+(\d+)\s+bytes`)

// rule maps a diagnostic matching the predicate to a record. A nil record
// means the diagnostic is not an error.
type rule struct {
	match func(raw string) bool
	build func(c *Classifier, subject, raw string) *Record
}

func contains(marker string) func(string) bool {
	return func(raw string) bool {
		return strings.Contains(raw, marker)
	}
}

func benign(*Classifier, string, string) *Record {
	return nil
}

var rules = []rule{
	{contains(AccountNotExistMarker), func(_ *Classifier, subject, _ string) *Record {
		return &Record{Kind: AccountNotExist, Msg: renderName(AccountNotExistTemplate, AccountNotExistMessage, subject)}
	}},
	{contains(LowRamMarker), func(_ *Classifier, _, raw string) *Record {
		return lowRam(raw)
	}},
	{contains(LocalExecutionMarker), benign},
	{contains(WalletExistsMarker), func(c *Classifier, subject, _ string) *Record {
		return c.wallet().WalletExists(subject)
	}},
	{contains(WalletNotExistMarker), func(c *Classifier, subject, _ string) *Record {
		return c.wallet().WalletNotExist(subject)
	}},
	{contains(InvalidPasswordMarker), func(c *Classifier, subject, _ string) *Record {
		return c.wallet().InvalidPassword(subject)
	}},
	{contains(KeyExistsMarker), benign},
	{func(raw string) bool { return raw == "" }, benign},
}

// Classifier maps raw diagnostics to records. The zero value is ready to use
// and renders wallet errors with TemplateWalletErrors.
type Classifier struct {
	// Wallet provides wallet-related records. If nil, TemplateWalletErrors
	// is used.
	Wallet WalletErrors
}

var defaultClassifier = &Classifier{}

// New returns a classifier delegating wallet errors to the given provider.
func New(wallet WalletErrors) *Classifier {
	return &Classifier{Wallet: wallet}
}

// Classify classifies raw text using the default classifier without a subject
// name.
func Classify(raw string) *Record {
	return defaultClassifier.Classify(raw)
}

// Classify is the same as ClassifyFor with an empty subject.
func (c *Classifier) Classify(raw string) *Record {
	return c.ClassifyFor("", raw)
}

// ClassifyFor returns a record for the given raw diagnostic or nil if it's
// not an error. The subject is the name of the account or wallet the
// diagnostic relates to, it's used in message templates.
func (c *Classifier) ClassifyFor(subject, raw string) *Record {
	for _, r := range rules {
		if r.match(raw) {
			rec := r.build(c, subject, raw)
			if rec != nil && rec.Raw == "" {
				rec.Raw = raw
			}
			return rec
		}
	}
	return &Record{Kind: Generic, Msg: raw, Raw: raw}
}

func (c *Classifier) wallet() WalletErrors {
	if c.Wallet == nil {
		return TemplateWalletErrors{}
	}
	return c.Wallet
}

// lowRam extracts RAM figures in bytes and converts them to kilobytes. The
// text is kept as a Generic record if the figures can't be found.
func lowRam(raw string) *Record {
	m := ramFigures.FindStringSubmatch(raw)
	if m == nil {
		return &Record{Kind: Generic, Msg: raw}
	}
	needs, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return &Record{Kind: Generic, Msg: raw}
	}
	has, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return &Record{Kind: Generic, Msg: raw}
	}
	return NewLowRam(floorDiv(needs, 1024), floorDiv(needs-has, 1024))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
