package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/annatar/internal/cli"
	"codeberg.org/snonux/annatar/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file and environment fill in what the command line left out
	cli.ApplyConfig(cmd, flags)

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	switch {
	case flags.Archive:
		if err := proc.Archive(); err != nil {
			return fmt.Errorf("failed to archive cards: %w", err)
		}
		return nil

	case flags.ServeAddr != "":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return proc.RunServer(ctx)

	case flags.GUIMode:
		return proc.RunGUIMode()

	case flags.BatchFile != "":
		if err := proc.ProcessBatch(); err != nil {
			return err
		}

	case len(args) > 0:
		return proc.ProcessText(strings.Join(args, " "))

	case !flags.GenerateDeck:
		// No text given, act as a filter
		return proc.ProcessReader(os.Stdin)
	}

	// Generate the deck if requested, after a batch or on its own
	if flags.GenerateDeck {
		// Keep YAML on stdout parseable
		progress := os.Stdout
		if flags.Format == processor.FormatYAML {
			progress = os.Stderr
		}
		fmt.Fprintf(progress, "\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateDeckFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Fprintf(progress, "Anki package created: %s\n", outputPath)
		}
	}

	if flags.BatchFile != "" && flags.Format != processor.FormatYAML {
		fmt.Printf("\nDone! Cards saved to: %s\n", flags.OutputDir)
	}
	return nil
}
