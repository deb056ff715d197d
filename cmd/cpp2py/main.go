package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dangerclosesec/cpp2py/transpile/parser"
)

const version = "0.2.0"

var (
	outputPath string
	verbose    bool
)

func init() {
	translateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the Python output to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "cpp2py",
	Short: "cpp2py translates a C++ subset into Python",
	Long:  `cpp2py is a CLI tool for translating source files written in a constrained C++ subset into equivalent Python source.`,
}

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a C++ source file",
	Long:  `Translate a C++ source file and print (or write) the Python result.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		python, warnings, err := parser.TranslateFile(filePath)
		if err != nil {
			log.Fatalf("Failed to translate %s: %v", filePath, err)
		}

		if verbose {
			for _, warning := range warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
			}
		}

		if outputPath == "" {
			fmt.Print(python)
			return
		}
		if err := os.WriteFile(outputPath, []byte(python), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", outputPath, err)
		}
		if verbose {
			fmt.Printf("Translated %s to %s\n", filePath, outputPath)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the cpp2py version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cpp2py version %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
