package main

import (
	"context"
	"fmt"
	"os"

	"github.com/teranos/i18ntypes/cmd/i18ntypes/commands"
	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/logger"
)

func main() {
	err := commands.NewRootCmd().ExecuteContext(context.Background())
	logger.Cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
