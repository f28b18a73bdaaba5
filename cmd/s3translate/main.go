// Package main is the entry point for the s3translate CLI.
package main

import "github.com/candrel/s3translate/internal/cli"

func main() {
	cli.Execute()
}
