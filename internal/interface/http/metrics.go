package handlers

import (
	"expvar"
	"strconv"
)

// opStats counts handled requests by "<op>.<status>", e.g. "user.create.201".
// Served by the debug module through expvar.
var opStats = expvar.NewMap("postboard_operations")

func record(op string, status int) {
	opStats.Add(op+"."+strconv.Itoa(status), 1)
}
