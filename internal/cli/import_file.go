package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/holasocioit-bit/visual-info/internal/config"
	"github.com/holasocioit-bit/visual-info/internal/database"
	"github.com/holasocioit-bit/visual-info/internal/database/papers"
	"github.com/holasocioit-bit/visual-info/internal/identity"
	"github.com/holasocioit-bit/visual-info/internal/importers"
)

// ImportFileCommand imports a file of semi-structured text into the database.
type ImportFileCommand struct {
	FilePath     string
	DatabasePath string
	GroupName    string
	DryRun       bool
}

func NewImportFileCommand() *ImportFileCommand {
	return &ImportFileCommand{}
}

func (cmd *ImportFileCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the text file to import (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.GroupName, "group", "", "Name for the created group (defaults to the source name)")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import papers from a file of pasted export text into the local database.\n")
		fmt.Fprintf(os.Stderr, "The file may use relaxed syntax (unquoted keys, single quotes, trailing commas).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file export.json -group \"Attention papers\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportFileCommand) Run() error {
	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", cmd.FilePath)
	}

	converter := importers.NewFileConverter(cmd.FilePath)

	if cmd.DryRun {
		records, _ := converter.Convert()
		fmt.Printf("DRY RUN: %d candidate records found in %s\n", len(records), cmd.FilePath)
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline := importers.NewPipeline(papers.NewRepository(db.DB), identity.NewGenerator())

	result, err := pipeline.Import(converter, cmd.GroupName)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if result.PapersImported == 0 {
		fmt.Println("No papers recognized in the input; nothing imported.")
		return nil
	}

	fmt.Printf("Imported %d papers into group %q\n", result.PapersImported, result.GroupName)
	return nil
}
