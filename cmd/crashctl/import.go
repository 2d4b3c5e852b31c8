package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/dataset"
	"github.com/viadata/crashdb/pkg/db"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-load a crash record extract",
	Long: `Bulk-load a crash record extract into the database.

The extract is a JSON document keyed by table name. Rows are inserted in
foreign-key order inside a single transaction; rows whose primary key is
already present are skipped.

With --watch, the argument is a trigger file instead. To trigger a load,
replace the contents of the watched file with the path to an extract. The
path must be visible to the process running "crashctl import --watch".

Example:
  crashctl import extract.json
  crashctl import --watch /run/crashdb/import/load`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch, _ := cmd.Flags().GetBool("watch")

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if watch {
			if err := watchImports(database, args[0]); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to watch imports: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := importExtract(database, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("watch", false, "watch a trigger file and load the extract it names")
}

func importExtract(database *gorm.DB, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open extract: %w", err)
	}
	defer func() { _ = file.Close() }()

	ds, err := dataset.Parse(file)
	if err != nil {
		return err
	}

	result, err := dataset.NewLoader(database).Load(ds)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d of %d rows from %s\n", result.Total(), ds.Size(), path)
	for kind, n := range result.Loaded {
		fmt.Printf("  %s: %d\n", kind, n)
	}
	return nil
}

func watchImports(database *gorm.DB, filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for extracts to load\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] Trigger file modified, loading extract...\n", time.Now().Format(time.RFC3339))

				content, err := os.ReadFile(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading trigger file: %v\n", err)
					continue
				}

				extractPath := strings.TrimSpace(string(content))
				if extractPath == "" {
					continue
				}

				if err := importExtract(database, extractPath); err != nil {
					fmt.Fprintf(os.Stderr, "Error loading extract: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
