package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/annatar/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "annatar [text...]",
		Short: "English to Tengwar and Black Speech converter",
		Long: `annatar converts English text to Tengwar, written as key codes of the
Tengwar Annatar font, or translates it to Black Speech.

Known Black Speech words come from a built-in dictionary, unknown words
are adapted phonetically. Uppercase T D R S Z Q L W C K G X H N typed
inside a word force a specific tengwa.

Examples:
  annatar "This was a triumph"            # Tengwar to stdout
  annatar -m blackspeech One Ring to rule them all
  echo "huge success" | annatar           # Read from stdin
  annatar --batch phrases.txt --deck      # Cards plus an Anki deck
  annatar --serve :8080                   # JSON API with /metrics
  annatar --gui                           # Desktop window`,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultOutputDir is where cards are written unless --output is given.
func DefaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "annatar", "cards")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.annatar.yaml)")

	// Conversion flags
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", flags.Mode, "Conversion mode: tengwar or blackspeech")
	cmd.Flags().BoolVar(&flags.Punctuation, "punctuation", false, "Render punctuation with Tengwar glyphs")

	// Batch and output flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", DefaultOutputDir(), "Cards directory for batch results")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Convert every line of a file (\"text\" or \"text = notes\")")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Batch result format printed to stdout: text or yaml")
	cmd.Flags().BoolVar(&flags.GenerateDeck, "deck", false, "Generate Anki import file (APKG format by default, use --deck-csv for CSV)")
	cmd.Flags().BoolVar(&flags.DeckCSV, "deck-csv", false, "Generate CSV instead of APKG when using --deck")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the cards directory and exit")

	// Other modes
	cmd.Flags().StringVar(&flags.ServeAddr, "serve", "", "Serve the JSON API on this address (e.g. :8080)")
	cmd.Flags().BoolVar(&flags.GUIMode, "gui", false, "Launch the desktop window")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("convert.mode", cmd.Flags().Lookup("mode"))
	viper.BindPFlag("convert.punctuation", cmd.Flags().Lookup("punctuation"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("deck.name", cmd.Flags().Lookup("deck-name"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".annatar" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".annatar")
	}

	// Environment variables, convert.mode is read from ANNATAR_CONVERT_MODE
	viper.SetEnvPrefix("ANNATAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies config file and environment values into flags the
// user did not set on the command line.
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if !changed("mode") && viper.IsSet("convert.mode") {
		flags.Mode = viper.GetString("convert.mode")
	}
	if !changed("punctuation") && viper.IsSet("convert.punctuation") {
		flags.Punctuation = viper.GetBool("convert.punctuation")
	}
	if !changed("output") && viper.IsSet("output.directory") {
		flags.OutputDir = viper.GetString("output.directory")
	}
	if !changed("format") && viper.IsSet("output.format") {
		flags.Format = viper.GetString("output.format")
	}
	if !changed("deck-name") && viper.IsSet("deck.name") {
		flags.DeckName = viper.GetString("deck.name")
	}
}
