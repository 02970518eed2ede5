package config

import (
	"fmt"
	"os"

	"github.com/jamsub/sunder/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// PathsConfig locates the files the tool reads, backs up and rewrites.
type PathsConfig struct {
	InterfacesFile string `yaml:"interfaces_file"`
	HostsFile      string `yaml:"hosts_file"`
	ResolvConf     string `yaml:"resolv_conf"`
	NetplanDir     string `yaml:"netplan_dir"`
	CorosyncConf   string `yaml:"corosync_conf"`
	BackupRoot     string `yaml:"backup_root"`
	LockFile       string `yaml:"lock_file"`
}

// ApplyConfig tunes the applier stage.
type ApplyConfig struct {
	SettleDelaySeconds int `yaml:"settle_delay_seconds"` // wait after reload before verification
}

// DrainConfig tunes the VM drain stage.
type DrainConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	TimeoutSeconds      int `yaml:"timeout_seconds"` // per-VM graceful shutdown budget
}

// Config represents the main configuration structure.
type Config struct {
	Logging  logging.LogConfig `yaml:"logging"`
	Hostname string            `yaml:"hostname"` // overrides os.Hostname for the hosts rewrite
	Paths    PathsConfig       `yaml:"paths"`
	Apply    ApplyConfig       `yaml:"apply"`
	Drain    DrainConfig       `yaml:"drain"`
}

// Default returns the built-in configuration for a Proxmox/Ubuntu host.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{Level: "info", Format: "simple"},
		Paths: PathsConfig{
			InterfacesFile: "/etc/network/interfaces",
			HostsFile:      "/etc/hosts",
			ResolvConf:     "/etc/resolv.conf",
			NetplanDir:     "/etc/netplan",
			CorosyncConf:   "/etc/pve/corosync.conf",
			BackupRoot:     "/var/backups/sunder",
			LockFile:       "/run/sunder.lock",
		},
		Apply: ApplyConfig{SettleDelaySeconds: 3},
		Drain: DrainConfig{PollIntervalSeconds: 5, TimeoutSeconds: 120},
	}
}

// Load reads configuration from a YAML file on top of the defaults. An
// empty path returns the defaults unchanged.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Paths.InterfacesFile == "" && c.Paths.NetplanDir == "" {
		return fmt.Errorf("paths: at least one of interfaces_file or netplan_dir must be set")
	}
	if c.Paths.HostsFile == "" {
		return fmt.Errorf("paths: hosts_file is required")
	}
	if c.Paths.BackupRoot == "" {
		return fmt.Errorf("paths: backup_root is required")
	}
	if c.Drain.PollIntervalSeconds <= 0 {
		return fmt.Errorf("drain: poll_interval_seconds must be positive")
	}
	if c.Drain.TimeoutSeconds <= 0 {
		return fmt.Errorf("drain: timeout_seconds must be positive")
	}
	if c.Apply.SettleDelaySeconds < 0 {
		return fmt.Errorf("apply: settle_delay_seconds must not be negative")
	}
	return nil
}
