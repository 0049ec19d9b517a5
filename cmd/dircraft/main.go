package main

import (
	"flag"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(flag.CommandLine)
	defer klog.Flush()

	if err := NewRootCmd().Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}
