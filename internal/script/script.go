// Package script loads and runs scripts that drive the containers of this module step by step.
// A script declares named containers and a list of steps, each step applying one operation to one container.
// Every container holds strings.
package script

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Container kinds
const (
	KindStack      = "stack"
	KindArray      = "array"
	KindQueue      = "queue"
	KindDeque      = "deque"
	KindHashTable  = "hashtable"
	KindPowerSet   = "powerset"
	KindDictionary = "dictionary"
	KindBloom      = "bloom"
)

// Script formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Container - Declares a container
//   - Name is what steps refer to the container by, it has to be unique within the script
//   - Kind is one of the Kind constants
//   - Capacity is the max size, bucket or slot count, or bit length depending on Kind. It is ignored by array,
//     queue and deque. A stack with no capacity gets the default max size.
type Container struct {
	Name     string `yaml:"name" toml:"name"`
	Kind     string `yaml:"kind" toml:"kind"`
	Capacity int    `yaml:"capacity" toml:"capacity"`
}

// Step - Applies Op with Args to the container named Target.
// Set algebra ops take the name of the other set as their single argument and store the derived set as a new
// container named Into.
type Step struct {
	Target string   `yaml:"target" toml:"target"`
	Op     string   `yaml:"op" toml:"op"`
	Args   []string `yaml:"args" toml:"args"`
	Into   string   `yaml:"into" toml:"into"`
}

// Script - A complete script
type Script struct {
	Containers []Container `yaml:"containers" toml:"containers"`
	Steps      []Step      `yaml:"steps" toml:"steps"`
}

// Load - Reads and parses a script file, the format is given by the file extension (.yaml, .yml or .toml)
func Load(path string) (script Script, err error) {
	var format string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		err = errors.Errorf("unsupported script file extension %q", ext)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "read script %s", path)
		return
	}

	script, err = Parse(data, format)
	if err != nil {
		err = errors.Wrapf(err, "load script %s", path)
	}

	return
}

// Parse - Parses a script in the given format (FormatYAML or FormatTOML)
func Parse(data []byte, format string) (script Script, err error) {
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &script)
	case FormatTOML:
		_, err = toml.Decode(string(data), &script)
	default:
		err = errors.Errorf("unsupported script format %q", format)
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "parse %s", format)
	}

	return
}

// Demo - Returns a script that fills a stack with max size 3 and then pushes a fourth element, which fails
func Demo() Script {
	steps := make([]Step, 0, 4)
	for _, v := range []string{"1", "2", "3", "4"} {
		steps = append(steps, Step{Target: "stack", Op: "push", Args: []string{v}})
	}

	return Script{
		Containers: []Container{{Name: "stack", Kind: KindStack, Capacity: 3}},
		Steps:      steps,
	}
}
