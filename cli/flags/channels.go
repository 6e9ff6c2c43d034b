package flags

import (
	"flag"
	"strings"

	"github.com/eosfactory/eosf/pkg/logger"
	"github.com/urfave/cli"
)

// Channels is a list of logger channels with flag.Value methods.
type Channels struct {
	IsSet bool
	Value []logger.Channel
}

var (
	_ flag.Value  = (*Channels)(nil)
	_ cli.Generic = (*Channels)(nil)
)

// String implements the fmt.Stringer interface.
func (c *Channels) String() string {
	if c == nil {
		return ""
	}
	names := make([]string, 0, len(c.Value))
	for _, ch := range c.Value {
		names = append(names, ch.String())
	}
	return strings.Join(names, ",")
}

// Set implements the flag.Value interface. It accepts a comma-separated list
// of channel names, an empty string disables all channels.
func (c *Channels) Set(s string) error {
	chs, err := logger.ParseChannels(s)
	if err != nil {
		return err
	}
	if chs == nil {
		chs = []logger.Channel{}
	}
	c.IsSet = true
	c.Value = chs
	return nil
}
