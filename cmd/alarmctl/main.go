package main

import "github.com/oshokin/alarm-countdown/cmd/alarmctl/cmd"

func main() {
	cmd.Execute()
}
