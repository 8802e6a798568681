// Package assets bundles the default Lua templates. Each one can be
// replaced by a file of the same name in the configuration directory.
package assets

import _ "embed"

// Print is the prelude run before every template. It makes print append to
// the __freshfetch__ output variable instead of writing to stdout.
//
//go:embed lua/print.lua
var Print string

// Info renders the info panel from the fact tables.
//
//go:embed lua/info.lua
var Info string

// Art renders the logo.
//
//go:embed lua/art.lua
var Art string

// Layout combines art, info and terminal into the final output.
//
//go:embed lua/layout.lua
var Layout string
