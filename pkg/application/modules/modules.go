// Package modules runs the listeners of the service inside one errgroup.
// Every module returns once its context is cancelled.
package modules

import "sc2ladder/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
