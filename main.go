package main

import "github.com/mohammedkshemsu/firewall-log-analyzer/internal/cmd"

func main() {
	cmd.Execute()
}
