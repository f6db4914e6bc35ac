package main

import "hrx/internal/app/server"

func main() {
	server.Run()
}
