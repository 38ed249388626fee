package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	config := &rootCmdConfig{}
	defer config.ContextCancelFunc()()
	if err := cliParser(config).Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser(config *rootCmdConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cedar",
		Short: "cedar is a tool to grow classification trees",
		Long:  `A tool to grow multiway classification trees from your data, test them, and use them to classify samples`,
	}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&config.logger), "verbose", "v", false, "log progress to STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), classifyCmd(config), setCmd(config))
	return rootCmd
}

/*
Context returns a context that is cancelled when the process receives an
interrupt signal.
*/
func (rcc *rootCmdConfig) Context() context.Context {
	rcc.setContextAndCancelFunc()
	return rcc.ctx
}

func (rcc *rootCmdConfig) ContextCancelFunc() context.CancelFunc {
	rcc.setContextAndCancelFunc()
	return rcc.cancelFunc
}

func (rcc *rootCmdConfig) setContextAndCancelFunc() {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
}
