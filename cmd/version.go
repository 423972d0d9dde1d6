package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kubechat",
		Long:  `All software has versions. This is kubechat's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kubechat version %s\n", rootCmd.Version)
		},
	}
}
