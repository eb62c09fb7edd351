package bech32encoding

import (
	"nprofile.mleku.dev/lol"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)

var (
	log, chk = lol.Main.Log, lol.Main.Check
)
