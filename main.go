package main

import "timetable-manager/cmd"

func main() {
	cmd.Execute()
}
