package main

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Show version information. With --verbose, also show runtime and host details.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vibe-orf version %s (%s) built %s\n", version, commit, date)
			if !a.verbose {
				return nil
			}

			fmt.Fprintf(out, "Go      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if cpuid.CPU.BrandName != "" {
				fmt.Fprintf(out, "CPU     %s\n", cpuid.CPU.BrandName)
			}
			fmt.Fprintf(out, "Threads %d\n", runtime.NumCPU())
			if cpuid.CPU.ThreadsPerCore > 0 {
				fmt.Fprintf(out, "Cores   %d\n", runtime.NumCPU()/cpuid.CPU.ThreadsPerCore)
			}
			if total := memory.TotalMemory(); total > 0 {
				fmt.Fprintf(out, "Memory  %d GiB\n", total/(1024*1024*1024))
			}
			return nil
		},
	}
}
