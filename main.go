package main

import "github.com/yosapark/yomogi_backend/cmd"

func main() {
	cmd.Execute()
}
