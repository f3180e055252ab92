// Package middlewarex holds the net/http middleware chain shared by every
// listener of the service.
package middlewarex

import "sc2ladder/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
