package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		klog.Flush()
		os.Exit(1)
	}
}
