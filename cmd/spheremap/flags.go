package main

import (
	"strconv"
	"strings"

	"spheremap/envmap"
)

// samples is the -aa flag, it only accepts the supported sample patterns.
type samples int

func (s *samples) String() string {
	return strconv.Itoa(int(*s))
}

func (s *samples) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return &envmap.ConfigError{Option: "aa", Value: v, Reason: "not a number"}
	}
	if _, err := envmap.PatternForSamples(n); err != nil {
		return err
	}
	*s = samples(n)
	return nil
}

// outputSize is the -size flag, a positive pixel count.
type outputSize int

func (sz *outputSize) String() string {
	return strconv.Itoa(int(*sz))
}

func (sz *outputSize) Set(v string) error {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	n, err := strconv.Atoi(v)
	if err != nil {
		return &envmap.ConfigError{Option: "size", Value: v, Reason: "not a number"}
	}
	if n <= 0 {
		return &envmap.ConfigError{Option: "size", Value: v, Reason: "must be positive"}
	}
	*sz = outputSize(n)
	return nil
}

func defaultOutputPath(prefix string) string {
	return prefix + "_spheremap.bmp"
}
