package main

import "github.com/vietddude/relaywatch/internal/cli"

func main() {
	cli.Execute()
}
