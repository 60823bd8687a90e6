// Package rclusterconfig is the cluster client's configuration surface: an
// Options struct that can be built programmatically or loaded from YAML.
package rclusterconfig

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options mirrors the configuration surface table: seed addresses, timeouts,
// retry budget, credentials, and the topology-discovery/TLS toggles.
type Options struct {
	// AddNodes lists one or more "host:port" seeds used to bootstrap the
	// initial topology; they need not cover every node.
	AddNodes []string `yaml:"add_nodes"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	CommandTimeout time.Duration `yaml:"command_timeout"`

	// MaxRetryCount bounds how many times one command may be resent (across
	// redirects and transient I/O errors) before giving up.
	MaxRetryCount int `yaml:"max_retry_count"`

	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// ParseReplicas has CLUSTER NODES parsing populate Node.Replicas.
	ParseReplicas bool `yaml:"parse_replicas"`
	// ParseOpenSlots has CLUSTER NODES parsing populate the migrating/
	// importing bookkeeping fields (never consulted for routing).
	ParseOpenSlots bool `yaml:"parse_open_slots"`
	// RouteUseSlots selects CLUSTER SLOTS over CLUSTER NODES for topology
	// refreshes; CLUSTER SLOTS is cheaper to parse but cannot report replica
	// IDs or open-slot migration state.
	RouteUseSlots bool `yaml:"route_use_slots"`

	// TLSEnabled and the cert/key paths below build TLSConfig in Load; when
	// building Options directly in code, set TLSConfig instead.
	TLSEnabled bool   `yaml:"tls_enabled"`
	TLSCert    string `yaml:"tls_cert"`
	TLSKey     string `yaml:"tls_key"`
	TLSCACert  string `yaml:"tls_ca_cert"`

	TLSConfig *tls.Config `yaml:"-"`
}

// defaults applied by Load and by NewOptions when the corresponding field is
// left at its zero value.
const (
	defaultConnectTimeout = 5 * time.Second
	defaultCommandTimeout = 5 * time.Second
	defaultMaxRetryCount  = 5
)

// NewOptions returns Options with the library's defaults: a 5-second connect
// and command timeout, and a retry budget of 5.
func NewOptions(addNodes ...string) *Options {
	return &Options{
		AddNodes:       addNodes,
		ConnectTimeout: defaultConnectTimeout,
		CommandTimeout: defaultCommandTimeout,
		MaxRetryCount:  defaultMaxRetryCount,
	}
}

// yamlOptions mirrors Options but keeps durations as strings — yaml.v3
// unmarshals time.Duration as a bare integer (nanoseconds), not the
// "5s"-style strings a config file should hold, so Load decodes into this
// shape first and converts with time.ParseDuration.
type yamlOptions struct {
	AddNodes       []string `yaml:"add_nodes"`
	ConnectTimeout string   `yaml:"connect_timeout"`
	CommandTimeout string   `yaml:"command_timeout"`
	MaxRetryCount  int      `yaml:"max_retry_count"`
	Username       string   `yaml:"username"`
	Password       string   `yaml:"password"`
	ParseReplicas  bool     `yaml:"parse_replicas"`
	ParseOpenSlots bool     `yaml:"parse_open_slots"`
	RouteUseSlots  bool     `yaml:"route_use_slots"`
	TLSEnabled     bool     `yaml:"tls_enabled"`
	TLSCert        string   `yaml:"tls_cert"`
	TLSKey         string   `yaml:"tls_key"`
	TLSCACert      string   `yaml:"tls_ca_cert"`
}

// Load reads YAML configuration from path, applies the library defaults to
// any field left unset, and builds TLSConfig from the cert/key paths when
// TLSEnabled is set.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rclusterconfig: read %s: %w", path, err)
	}
	var raw yamlOptions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("rclusterconfig: parse %s: %w", path, err)
	}
	opts := &Options{
		AddNodes:       raw.AddNodes,
		MaxRetryCount:  raw.MaxRetryCount,
		Username:       raw.Username,
		Password:       raw.Password,
		ParseReplicas:  raw.ParseReplicas,
		ParseOpenSlots: raw.ParseOpenSlots,
		RouteUseSlots:  raw.RouteUseSlots,
		TLSEnabled:     raw.TLSEnabled,
		TLSCert:        raw.TLSCert,
		TLSKey:         raw.TLSKey,
		TLSCACert:      raw.TLSCACert,
	}
	if raw.ConnectTimeout != "" {
		d, err := time.ParseDuration(raw.ConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("rclusterconfig: connect_timeout: %w", err)
		}
		opts.ConnectTimeout = d
	}
	if raw.CommandTimeout != "" {
		d, err := time.ParseDuration(raw.CommandTimeout)
		if err != nil {
			return nil, fmt.Errorf("rclusterconfig: command_timeout: %w", err)
		}
		opts.CommandTimeout = d
	}
	opts.ApplyDefaults()
	if opts.TLSEnabled {
		tlsCfg, err := buildTLSConfig(opts)
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = tlsCfg
	}
	return opts, opts.Validate()
}

// ApplyDefaults fills any zero-valued timeout/retry field with the library
// default, in place. Load calls this automatically; callers constructing an
// Options directly (rather than through NewOptions) should call it before
// use so a field left unset doesn't silently disable retries or timeouts.
func (o *Options) ApplyDefaults() {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = defaultConnectTimeout
	}
	if o.CommandTimeout <= 0 {
		o.CommandTimeout = defaultCommandTimeout
	}
	if o.MaxRetryCount <= 0 {
		o.MaxRetryCount = defaultMaxRetryCount
	}
}

// Validate reports a configuration error without attempting to connect.
func (o *Options) Validate() error {
	if len(o.AddNodes) == 0 {
		return fmt.Errorf("rclusterconfig: add_nodes must list at least one seed address")
	}
	return nil
}

func buildTLSConfig(o *Options) (*tls.Config, error) {
	cfg := &tls.Config{}
	if o.TLSCert != "" && o.TLSKey != "" {
		cert, err := tls.LoadX509KeyPair(o.TLSCert, o.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("rclusterconfig: load tls cert/key: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	if o.TLSCACert != "" {
		pem, err := os.ReadFile(o.TLSCACert)
		if err != nil {
			return nil, fmt.Errorf("rclusterconfig: read tls ca cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("rclusterconfig: no certificates found in %s", o.TLSCACert)
		}
		cfg.RootCAs = pool
	}
	return cfg, nil
}
