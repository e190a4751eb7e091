package efs

import (
	"fmt"
	"sort"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsefs"
)

// InvalidModeError reports a mode selector that is outside its accepted set.
type InvalidModeError struct {
	Kind     string
	Value    string
	Accepted []string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid %s mode %q: must be one of %v", e.Kind, e.Value, e.Accepted)
}

// The two selector sets are intentionally independent; neither derives from
// the other or from a shared source.
var performanceModes = map[string]awsefs.PerformanceMode{
	"generalPurpose": awsefs.PerformanceMode_GENERAL_PURPOSE,
	"maxIO":          awsefs.PerformanceMode_MAX_IO,
}

var throughputModes = map[string]awsefs.ThroughputMode{
	"bursting": awsefs.ThroughputMode_BURSTING,
	"elastic":  awsefs.ThroughputMode_ELASTIC,
}

// ParsePerformanceMode maps a raw selector to an EFS performance mode.
// Comparison is exact; there is no default.
func ParsePerformanceMode(raw string) (awsefs.PerformanceMode, error) {
	mode, ok := performanceModes[raw]
	if !ok {
		return "", &InvalidModeError{Kind: "performance", Value: raw, Accepted: acceptedPerformanceModes()}
	}
	return mode, nil
}

// ParseThroughputMode maps a raw selector to an EFS throughput mode.
// Comparison is exact; there is no default.
func ParseThroughputMode(raw string) (awsefs.ThroughputMode, error) {
	mode, ok := throughputModes[raw]
	if !ok {
		return "", &InvalidModeError{Kind: "throughput", Value: raw, Accepted: acceptedThroughputModes()}
	}
	return mode, nil
}

func acceptedPerformanceModes() []string {
	return sortedKeys(performanceModes)
}

func acceptedThroughputModes() []string {
	return sortedKeys(throughputModes)
}

// sortedKeys returns map keys sorted for stable error messages.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
