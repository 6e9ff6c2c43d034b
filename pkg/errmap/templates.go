package errmap

import (
	"strconv"

	"github.com/valyala/fasttemplate"
)

// Message templates. Placeholders are enclosed in curly braces.
const (
	AccountNotExistTemplate = "Account ``{name}`` does not exist in the blockchain. It may be created."
	WalletExistsTemplate    = "Wallet ``{name}`` already exists."
	WalletNotExistTemplate  = "Wallet ``{name}`` does not exist."
	InvalidPasswordTemplate = "Invalid password for wallet {name}."
	LowRamTemplate          = "Ram needed is {needs}kB, deficiency is {deficiency}kB."
)

// Messages used instead of the templates above when the subject name is not
// known.
const (
	AccountNotExistMessage = "Account does not exist in the blockchain. It may be created."
	WalletExistsMessage    = "Wallet already exists."
	WalletNotExistMessage  = "Wallet does not exist."
	InvalidPasswordMessage = "Invalid wallet password."
)

func render(template string, values map[string]any) string {
	return fasttemplate.ExecuteString(template, "{", "}", values)
}

// renderName renders the template for the given name or returns the
// nameless message if there is no name.
func renderName(template, nameless, name string) string {
	if name == "" {
		return nameless
	}
	return render(template, map[string]any{"name": name})
}

// WalletErrors builds records for wallet-related diagnostics. The classifier
// doesn't own these kinds, it delegates their construction to the provider
// it's configured with.
type WalletErrors interface {
	WalletExists(name string) *Record
	WalletNotExist(name string) *Record
	InvalidPassword(name string) *Record
}

// TemplateWalletErrors is a WalletErrors provider rendering the package's
// default message templates.
type TemplateWalletErrors struct{}

var _ WalletErrors = TemplateWalletErrors{}

// WalletExists implements the WalletErrors interface.
func (TemplateWalletErrors) WalletExists(name string) *Record {
	return &Record{Kind: WalletExists, Msg: renderName(WalletExistsTemplate, WalletExistsMessage, name)}
}

// WalletNotExist implements the WalletErrors interface.
func (TemplateWalletErrors) WalletNotExist(name string) *Record {
	return &Record{Kind: WalletNotExist, Msg: renderName(WalletNotExistTemplate, WalletNotExistMessage, name)}
}

// InvalidPassword implements the WalletErrors interface.
func (TemplateWalletErrors) InvalidPassword(name string) *Record {
	return &Record{Kind: InvalidPassword, Msg: renderName(InvalidPasswordTemplate, InvalidPasswordMessage, name)}
}

// NewLowRam creates a LowRam record for the given figures in kilobytes.
func NewLowRam(needsKB, deficiencyKB int64) *Record {
	return &Record{
		Kind: LowRam,
		Msg: render(LowRamTemplate, map[string]any{
			"needs":      strconv.FormatInt(needsKB, 10),
			"deficiency": strconv.FormatInt(deficiencyKB, 10),
		}),
		NeedsKB:      needsKB,
		DeficiencyKB: deficiencyKB,
	}
}
