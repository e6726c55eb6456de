package auth

import "go.uber.org/fx"

// Module wires the auth gate.
var Module = fx.Provide(NewGate)
