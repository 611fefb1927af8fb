package main

import (
	"github.com/watson-developer-cloud/watson-go/cmd"
	"github.com/watson-developer-cloud/watson-go/internal/logging"
)

func main() {
	defer logging.RecoverPanic("main", nil)

	cmd.Execute()
}
