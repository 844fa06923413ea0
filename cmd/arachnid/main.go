package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "arachnid",
		Short: "Investigation puzzle backend",
		Long: "arachnid serves the S.P.I.D.E.R. agent-lookup protocol, the W.E.B.\n" +
			"surveillance and inventory protocol, and the drone AI chat proxy.",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newGenerateCmd())

	if err := root.Execute(); err != nil {
		log.Fatalf("arachnid exited with error: %v", err)
	}
}
