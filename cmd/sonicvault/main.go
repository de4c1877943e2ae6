package main

import "github.com/yyyoichi/sonic_vault/cmd/sonicvault/cmd"

func main() {
	cmd.Execute()
}
