package ecs

import "github.com/TheBitDrifter/bark"

// traceErr wraps a programmer-error value with a call-site stack trace
// before it is returned.
func traceErr(err error) error {
	return bark.AddTrace(err)
}
