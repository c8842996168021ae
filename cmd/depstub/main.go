package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/depstub/depstub/internal/cli"
	"github.com/depstub/depstub/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		outFlag     = flag.String("out", "", "Directory for generated files (defaults to each manifest's directory)")
		moduleFlag  = flag.String("module", "", "Custom module path for relative imports (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all generated *_depstub.go files from the specified paths")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Depstub Dependency Client Generator\n")
		fmt.Fprintf(os.Stderr, "Scans for *.depstub.yaml manifests and generates dependency client structs\n")
		fmt.Fprintf(os.Stderr, "with unimplemented defaults, label-preserving wrappers, and constructors.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  paths              Manifest files or directories containing them\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                              # Process every manifest recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/clients                 # Process one directory (no recursion)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s audioplayer.depstub.yaml           # Process a single manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --out ./gen ./...                  # Write generated files to ./gen\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --module github.com/myorg/app ./...  # Specify custom module path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./...                    # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...                      # Delete all generated files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("Depstub Client Generator")

	// Handle clean operation
	if *cleanFlag {
		cleaner := cli.NewCleaner()
		if err := cleaner.Clean(args); err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}
		for _, file := range cleaner.RemovedFiles() {
			diagnostics.List("removed %s", file)
		}
		diagnostics.Success("All generated *_depstub.go files have been removed")
		return
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target paths: %s", strings.Join(args, ", "))
		if *outFlag != "" {
			diagnostics.List("Output directory: %s", *outFlag)
		}
		if *moduleFlag != "" {
			diagnostics.List("Custom module: %s", *moduleFlag)
		}
		diagnostics.List("Verbose mode: enabled")
	}

	generator := cli.NewGenerator(cli.Config{
		OutDir:  *outFlag,
		Module:  *moduleFlag,
		Verbose: *verboseFlag,
	}, diagnostics)

	diagnostics.Subsection("Client Generation")
	err := generator.Generate(args)
	summary := generator.Summary()

	if err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	stats := map[string]int{
		"Manifests processed":  summary.ManifestsProcessed,
		"Interfaces generated": summary.InterfacesGenerated,
		"Wrappers generated":   summary.WrappersGenerated,
		"Files written":        len(summary.GeneratedFiles),
	}
	diagnostics.Summary("Generation Complete!", stats)

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.Success("Your dependency clients are ready to use!")
}
