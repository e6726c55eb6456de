package catalog

import "go.uber.org/fx"

// Module provides the static product catalog.
var Module = fx.Provide(New)
