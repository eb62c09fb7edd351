// Package chk is a shortcut to the error checkers of the main lol.Logger.
package chk

import (
	"nprofile.mleku.dev/lol"
)

var F, E, W, I, D, T lol.Chk

func init() {
	F, E, W, I, D, T = lol.Main.Check.F, lol.Main.Check.E, lol.Main.Check.W,
		lol.Main.Check.I, lol.Main.Check.D, lol.Main.Check.T
}
