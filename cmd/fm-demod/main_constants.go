package main

import demod "github.com/tphakala/go-fm-demod"

const appName = "fm-demod"

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
)

// Stdio buffering
const (
	readBufferSize  = 2 * demod.BufferSize
	writeBufferSize = 2 * demod.BufferSize
)
