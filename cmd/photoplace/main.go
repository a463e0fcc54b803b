// cmd/photoplace/main.go
package main

import (
	"github.com/bstardust/photoplace/pkg/cli"
)

func main() {
	cli.Execute()
}
