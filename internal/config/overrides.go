package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Overrides is a sparse Model: only non-nil fields replace the values of the
// model they are applied to.
type Overrides struct {
	RootDebate        *int
	Paths             []string
	JSON              *string
	HTML              *string
	Open              *bool
	ArgumentKeyOffset *int

	Endpoint  *string
	Region    *string
	AccessKey *string
	SecretKey *string
	UseSSL    *bool
}

// Apply writes the set fields of o into m.
func (o Overrides) Apply(m *Model) {
	setInt(&m.RootDebate, o.RootDebate)
	if o.Paths != nil {
		m.Sources.Paths = append([]string(nil), o.Paths...)
		m.Sources.Optional = nil
	}
	setString(&m.Output.JSON, o.JSON)
	setString(&m.Output.HTML, o.HTML)
	setBool(&m.Output.Open, o.Open)
	setInt(&m.Graph.ArgumentKeyOffset, o.ArgumentKeyOffset)
	setString(&m.Storage.Endpoint, o.Endpoint)
	setString(&m.Storage.Region, o.Region)
	setString(&m.Storage.AccessKey, o.AccessKey)
	setString(&m.Storage.SecretKey, o.SecretKey)
	setBool(&m.Storage.UseSSL, o.UseSSL)
}

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "HYPERGRAPH_"

// FromEnv collects overrides from environment variables:
//
//	HYPERGRAPH_ROOT, HYPERGRAPH_INPUT (comma separated), HYPERGRAPH_JSON,
//	HYPERGRAPH_HTML, HYPERGRAPH_OPEN, HYPERGRAPH_ARGUMENT_KEY_OFFSET,
//	HYPERGRAPH_S3_ENDPOINT, HYPERGRAPH_S3_REGION, HYPERGRAPH_S3_ACCESS_KEY,
//	HYPERGRAPH_S3_SECRET_KEY, HYPERGRAPH_S3_USE_SSL
//
// lookup has the signature of os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Overrides, error) {
	var o Overrides
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	var err error
	if o.RootDebate, err = envInt(get, "ROOT"); err != nil {
		return o, err
	}
	if v, ok := get("INPUT"); ok && v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				o.Paths = append(o.Paths, p)
			}
		}
	}
	o.JSON = envString(get, "JSON")
	o.HTML = envString(get, "HTML")
	if o.Open, err = envBool(get, "OPEN"); err != nil {
		return o, err
	}
	if o.ArgumentKeyOffset, err = envInt(get, "ARGUMENT_KEY_OFFSET"); err != nil {
		return o, err
	}
	o.Endpoint = envString(get, "S3_ENDPOINT")
	o.Region = envString(get, "S3_REGION")
	o.AccessKey = envString(get, "S3_ACCESS_KEY")
	o.SecretKey = envString(get, "S3_SECRET_KEY")
	if o.UseSSL, err = envBool(get, "S3_USE_SSL"); err != nil {
		return o, err
	}
	return o, nil
}

func envString(get func(string) (string, bool), name string) *string {
	if v, ok := get(name); ok {
		return &v
	}
	return nil
}

func envInt(get func(string) (string, bool), name string) (*int, error) {
	v, ok := get(name)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
	}
	return &n, nil
}

func envBool(get func(string) (string, bool), name string) (*bool, error) {
	v, ok := get(name)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
	}
	return &b, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
