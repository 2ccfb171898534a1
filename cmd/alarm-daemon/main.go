package main

import "github.com/oshokin/alarm-countdown/cmd/alarm-daemon/cmd"

func main() {
	cmd.Execute()
}
