package logger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Channel is a named output stream of the Logger. Every channel has its own
// display style and is printed only if it's active (or forced).
type Channel byte

// Logger channels.
const (
	Comment Channel = iota
	Info
	Trace
	Error
	ErrorTesting
	Out
	OutInfo
	Debug
)

// Style is a display style of a channel. Empty colors leave the terminal
// default.
type Style struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Bold       bool
}

// Basic ANSI colors.
const (
	red     lipgloss.Color = "1"
	green   lipgloss.Color = "2"
	yellow  lipgloss.Color = "3"
	blue    lipgloss.Color = "4"
	magenta lipgloss.Color = "5"
)

var channelNames = [...]string{
	Comment:      "COMMENT",
	Info:         "INFO",
	Trace:        "TRACE",
	Error:        "ERROR",
	ErrorTesting: "ERROR_TESTING",
	Out:          "OUT",
	OutInfo:      "OUT_INFO",
	Debug:        "DEBUG",
}

var channelStyles = [...]Style{
	Comment:      {Foreground: green},
	Info:         {Foreground: blue, Bold: true},
	Trace:        {Foreground: blue},
	Error:        {Foreground: red},
	ErrorTesting: {Foreground: magenta},
	Out:          {},
	OutInfo:      {Foreground: magenta, Background: green},
	Debug:        {Foreground: yellow},
}

// DefaultChannels is the default set of active channels.
var DefaultChannels = []Channel{Trace, Out, Debug}

// AllChannels returns all known channels in their natural order.
func AllChannels() []Channel {
	res := make([]Channel, len(channelNames))
	for i := range res {
		res[i] = Channel(i)
	}
	return res
}

// String implements the fmt.Stringer interface.
func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", byte(c))
}

// Style returns the display style of the channel.
func (c Channel) Style() Style {
	if int(c) < len(channelStyles) {
		return channelStyles[c]
	}
	return Style{}
}

// ParseChannel returns a channel by its name (case-insensitive). SCENARIO is
// accepted as an alias of COMMENT.
func ParseChannel(s string) (Channel, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "SCENARIO") {
		return Comment, nil
	}
	for i, name := range channelNames {
		if strings.EqualFold(s, name) {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// ParseChannels parses a comma-separated list of channel names. Duplicates
// are dropped, the order of the first occurrence is kept.
func ParseChannels(s string) ([]Channel, error) {
	var res []Channel
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ch, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		res = appendUnique(res, ch)
	}
	return res, nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Channel) MarshalText() ([]byte, error) {
	if int(c) >= len(channelNames) {
		return nil, fmt.Errorf("unknown channel %d", byte(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Channel) UnmarshalText(text []byte) error {
	ch, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = ch
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Channel) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(name))
}

func appendUnique(list []Channel, ch Channel) []Channel {
	for _, c := range list {
		if c == ch {
			return list
		}
	}
	return append(list, ch)
}
