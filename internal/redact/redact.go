// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

// Package redact strips credential values from text before it is written to
// a report, a log line, or an error message.
package redact

import (
	"os"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// sensitiveEnvVars lists environment variables whose values commonly leak
// into captured command output and traces.
var sensitiveEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_SESSION_TOKEN",
	"NPM_TOKEN",
	"DBGREPORT_TOKEN",
}

// Values shorter than this are too likely to match ordinary text.
const minSecretLen = 4

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if len(val) >= minSecretLen {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// ResetForTest clears the cached secrets so tests can change the
// environment with t.Setenv between calls.
func ResetForTest() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// String replaces any occurrence of a known sensitive environment variable
// value with Placeholder. Secret values are read once, on first call.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return s
}
