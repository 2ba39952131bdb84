// Package config loads the client's JSON configuration, either one of the
// named configurations compiled into the binary or a file.
package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/common"
	"github.com/dssim/dsclient/scheduler/policy"
	"github.com/dssim/dsclient/scheduler/server"
)

// JSONConfigs is the top level configuration document.
type JSONConfigs struct {
	Simulator SimulatorJSONConfig `json:"Simulator"`
	Scheduler SchedulerJSONConfig `json:"Scheduler"`
}

func (c JSONConfigs) String() string {
	return fmt.Sprintf("\n%s\n%s", c.Simulator, c.Scheduler)
}

type SimulatorJSONConfig struct {
	Addr        string `json:"Addr"`        // default to 127.0.0.1:8096
	User        string `json:"User"`        // default to $USER
	DialTimeout string `json:"DialTimeout"` // default to 5s
	DialRetries int    `json:"DialRetries"` // default to 5
	ReadTimeout string `json:"ReadTimeout"` // default to none
}

func (s SimulatorJSONConfig) String() string {
	return fmt.Sprintf("SimulatorJSONConfig: Addr: %s, User: %s, DialTimeout: %s, DialRetries: %d, ReadTimeout: %s",
		s.Addr, s.User, s.DialTimeout, s.DialRetries, s.ReadTimeout)
}

type SchedulerJSONConfig struct {
	Algorithm   string `json:"Algorithm"`   // largest, ff, bf, wf, bfp
	Feasibility string `json:"Feasibility"` // full or cores
	StatsLatch  string `json:"StatsLatch"`  // default to 15s
}

func (s SchedulerJSONConfig) String() string {
	return fmt.Sprintf("SchedulerJSONConfig: Algorithm: %s, Feasibility: %s, StatsLatch: %s",
		s.Algorithm, s.Feasibility, s.StatsLatch)
}

// SimulatorConfig is SimulatorJSONConfig with durations parsed.
type SimulatorConfig struct {
	Addr        string
	User        string
	DialTimeout time.Duration
	DialRetries uint64
	ReadTimeout time.Duration
}

func (jc *SimulatorJSONConfig) CreateSimulatorConfig() (*SimulatorConfig, error) {
	cfg := &SimulatorConfig{
		Addr:        jc.Addr,
		User:        jc.User,
		DialTimeout: common.DefaultDialTimeout,
		DialRetries: common.DefaultDialRetries,
		ReadTimeout: common.DefaultReadTimeout,
	}
	var err error
	if jc.DialTimeout != "" {
		if cfg.DialTimeout, err = time.ParseDuration(jc.DialTimeout); err != nil {
			return nil, errors.Wrap(err, "Simulator.DialTimeout")
		}
	}
	if jc.ReadTimeout != "" {
		if cfg.ReadTimeout, err = time.ParseDuration(jc.ReadTimeout); err != nil {
			return nil, errors.Wrap(err, "Simulator.ReadTimeout")
		}
	}
	if jc.DialRetries < 0 {
		return nil, fmt.Errorf("Simulator.DialRetries must not be negative, got %d", jc.DialRetries)
	}
	if jc.DialRetries > 0 {
		cfg.DialRetries = uint64(jc.DialRetries)
	}
	return cfg, nil
}

func (jc *SchedulerJSONConfig) CreateSessionConfig() (server.SessionConfig, error) {
	algorithm, err := policy.ParseAlgorithm(jc.Algorithm)
	if err != nil {
		return server.SessionConfig{}, errors.Wrap(err, "Scheduler.Algorithm")
	}
	feasibility, err := policy.ParseFeasibility(jc.Feasibility)
	if err != nil {
		return server.SessionConfig{}, errors.Wrap(err, "Scheduler.Feasibility")
	}
	return server.SessionConfig{Algorithm: algorithm, Feasibility: feasibility}, nil
}

// StatsLatchDuration is how often the stats registry is captured for rendering.
func (jc *SchedulerJSONConfig) StatsLatchDuration() (time.Duration, error) {
	if jc.StatsLatch == "" {
		return common.DefaultStatsLatch, nil
	}
	d, err := time.ParseDuration(jc.StatsLatch)
	if err != nil {
		return 0, errors.Wrap(err, "Scheduler.StatsLatch")
	}
	return d, nil
}

// Names lists the named configurations.
func Names() []string {
	keys := make([]string, 0, len(Configs))
	for k := range Configs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func GetConfigText(configSelector string) ([]byte, error) {
	configText, ok := Configs[configSelector]
	if !ok {
		return nil, fmt.Errorf("invalid configuration %s, supported values are %v", configSelector, Names())
	}
	return []byte(configText), nil
}

// GetConfigs returns the named configuration.
func GetConfigs(configName string) (*JSONConfigs, error) {
	configText, err := GetConfigText(configName)
	if err != nil {
		return nil, err
	}
	return ParseConfigs(configText)
}

// LoadConfigFile reads a configuration from a JSON file.
func LoadConfigFile(filename string) (*JSONConfigs, error) {
	configText, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", filename)
	}
	return ParseConfigs(configText)
}

// ParseConfigs parses configText and fills any section that was left out
// entirely from the default configuration.
func ParseConfigs(configText []byte) (*JSONConfigs, error) {
	defaultConfig := &JSONConfigs{}
	if err := json.Unmarshal([]byte(Configs["default"]), defaultConfig); err != nil {
		return nil, fmt.Errorf("couldn't parse the default config: %v", err)
	}

	configs := &JSONConfigs{}
	if err := json.Unmarshal(configText, configs); err != nil {
		return nil, fmt.Errorf("couldn't parse top-level config: %v", err)
	}

	if configs.Simulator == (SimulatorJSONConfig{}) {
		log.Infof("using default Simulator config")
		configs.Simulator = defaultConfig.Simulator
	}
	if configs.Scheduler == (SchedulerJSONConfig{}) {
		log.Infof("using default Scheduler config")
		configs.Scheduler = defaultConfig.Scheduler
	}
	return configs, nil
}
