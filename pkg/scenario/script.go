package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eosfactory/eosf/pkg/errmap"
	"gopkg.in/yaml.v3"
)

// NoError is the ExpectError value requiring a step to succeed or fail with a
// benign diagnostic only.
const NoError = "none"

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"Name"`
	Steps []Step `yaml:"Steps"`
}

// Step is a single script action. A step can narrate (Comment), run a
// toolchain command (Run) or both, comment goes first then.
type Step struct {
	// Comment is printed to the COMMENT channel.
	Comment string `yaml:"Comment"`
	// Run is a toolchain command line (without the binary name).
	Run string `yaml:"Run"`
	// Subject is the account or wallet name the command deals with.
	Subject string `yaml:"Subject"`
	// Expect lists substrings the command output must contain.
	Expect []string `yaml:"Expect"`
	// ExpectError is the name of the error kind the command must fail
	// with, or NoError.
	ExpectError string `yaml:"ExpectError"`
}

// LoadScript reads a script from a YAML file. The script name defaults to
// the file name without extension.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	s := new(Script)
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal script YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the script for consistency.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	if st.Comment == "" && st.Run == "" {
		return errors.New("neither Comment nor Run is specified")
	}
	if st.Run == "" && (len(st.Expect) != 0 || st.ExpectError != "" || st.Subject != "") {
		return errors.New("expectations without Run")
	}
	if st.ExpectError != "" && st.ExpectError != NoError {
		if _, err := errmap.ParseKind(st.ExpectError); err != nil {
			return err
		}
	}
	return nil
}
