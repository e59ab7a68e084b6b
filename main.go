package main

import "github.com/frahmantamala/payment-wallet/cmd"

func main() {
	cmd.Execute()
}
