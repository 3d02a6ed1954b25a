package main

import (
	// Embedded zone database so the reset schedule works on hosts without tzdata.
	_ "time/tzdata"

	"card-timers/cmd"
)

func main() {
	cmd.Execute()
}
