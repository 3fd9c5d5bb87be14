package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	OutputDir string
	BatchFile string
	GUIMode   bool
	Archive   bool

	// Conversion flags
	Mode        string
	Punctuation bool

	// Output flags
	Format       string
	GenerateDeck bool
	DeckCSV      bool
	DeckName     string

	// Service flags
	ServeAddr string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Mode:     "tengwar",
		Format:   "text",
		DeckName: "Tengwar and Black Speech",
	}
}
