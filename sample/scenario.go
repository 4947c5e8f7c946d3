package sample

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/validation"
)

// ScenarioPathEnv overrides the scenario search path. Entries are separated
// by the OS path list separator.
const ScenarioPathEnv = "MX_SCENARIO_PATH"

// ScenarioConfig holds the directories searched for scenario files.
type ScenarioConfig struct {
	Paths []string
}

// DefaultScenarioConfig returns the search path from MX_SCENARIO_PATH, or
// testdata/scenarios when the variable is unset.
func DefaultScenarioConfig() ScenarioConfig {
	if env := os.Getenv(ScenarioPathEnv); env != "" {
		return ScenarioConfig{Paths: filepath.SplitList(env)}
	}
	return ScenarioConfig{Paths: []string{filepath.Join("testdata", "scenarios")}}
}

// AddPath appends a directory to the search path.
func (c ScenarioConfig) AddPath(path string) ScenarioConfig {
	c.Paths = append(c.Paths, path)
	return c
}

// Scenario is a named set of field overrides for one message type. Override
// keys are dot-separated JSON paths into the envelope, e.g.
// "Document.FIToFICstmrCdtTrf.GrpHdr.MsgId".
type Scenario struct {
	Name        string         `yaml:"name"`
	MessageType string         `yaml:"message_type"`
	Description string         `yaml:"description,omitempty"`
	Overrides   map[string]any `yaml:"overrides"`
}

// FindScenario locates a scenario by message type and name. An empty name
// matches the first scenario declared for the message type.
func FindScenario(cfg ScenarioConfig, messageType, name string) (*Scenario, error) {
	want := mxmessage.NormalizeMessageType(messageType)
	for _, dir := range cfg.Paths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			sc, err := loadScenarioFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			if mxmessage.NormalizeMessageType(sc.MessageType) != want {
				continue
			}
			if name == "" || sc.Name == name {
				return sc, nil
			}
		}
	}
	return nil, scenarioError("no scenario found for %s (name %q) in %v", want, name, cfg.Paths)
}

func loadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scenarioError("read scenario %s: %v", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, scenarioError("parse scenario %s: %v", path, err)
	}
	if sc.MessageType == "" {
		return nil, scenarioError("scenario %s missing message_type", path)
	}
	return &sc, nil
}

// Apply rewrites the envelope with the scenario's overrides. The envelope is
// round-tripped through its JSON form so overrides address fields by their
// wire names.
func (s *Scenario) Apply(env *mxmessage.Envelope) (*mxmessage.Envelope, error) {
	if len(s.Overrides) == 0 {
		return env, nil
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, scenarioError("scenario %s: encode envelope: %v", s.Name, err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, scenarioError("scenario %s: decode envelope: %v", s.Name, err)
	}
	for key, val := range s.Overrides {
		if err := setPath(tree, strings.Split(key, "."), val); err != nil {
			return nil, scenarioError("scenario %s: override %s: %v", s.Name, key, err)
		}
	}
	patched, err := json.Marshal(tree)
	if err != nil {
		return nil, scenarioError("scenario %s: encode overrides: %v", s.Name, err)
	}
	var out mxmessage.Envelope
	if err := json.Unmarshal(patched, &out); err != nil {
		return nil, scenarioError("scenario %s: apply overrides: %v", s.Name, err)
	}
	return &out, nil
}

// setPath walks the JSON tree creating intermediate objects as needed and
// sets the leaf value.
func setPath(tree map[string]any, segs []string, val any) error {
	node := tree
	for i, seg := range segs {
		if i == len(segs)-1 {
			node[seg] = val
			return nil
		}
		next, ok := node[seg]
		if !ok || next == nil {
			child := map[string]any{}
			node[seg] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("segment %q is not an object", seg)
		}
		node = child
	}
	return nil
}

func scenarioError(format string, args ...any) error {
	return validation.NewValidationError(validation.CodeScenario, fmt.Sprintf(format, args...))
}
