// Command routinectl runs the routine engine from the terminal, without a
// database or mail server.
//
// Usage:
//
//	routinectl generate --hair-type curly --budget low --goal moisture --answer porosity=low
//	routinectl questions --hair-type wavy
//	echo "s3cret" | routinectl hash-password
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "routinectl",
		Short:         "Generate hair care routines from quiz answers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newGenerateCmd(), newQuestionsCmd(), newHashPasswordCmd())
	return root
}
