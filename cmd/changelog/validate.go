package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var changeTypes = map[string]bool{
	"Added":      true,
	"Changed":    true,
	"Deprecated": true,
	"Removed":    true,
	"Fixed":      true,
	"Security":   true,
}

// ValidationError is a single problem found in a changelog.
type ValidationError struct {
	Line    int
	Message string
}

func (e ValidationError) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Validate checks a changelog's structure against the Keep a Changelog
// conventions: title, an Unreleased section, semver versions with ISO
// dates, known change-type headings, and link definitions per version.
func Validate(source []byte, log *Changelog) []ValidationError {
	var errs []ValidationError

	lines := strings.Split(string(source), "\n")
	if len(lines) == 0 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "# ") {
		errs = append(errs, ValidationError{Line: 1, Message: "missing top-level title"})
	}

	hasUnreleased := false
	for _, entry := range log.Entries {
		if entry.Version == "Unreleased" {
			hasUnreleased = true
			continue
		}

		if !versionPattern.MatchString(entry.Version) {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("version %q is not semver (X.Y.Z)", entry.Version),
			})
		}

		if entry.Date == "" {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("version %s is missing a release date", entry.Version),
			})
		} else if !datePattern.MatchString(entry.Date) {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("version %s has a malformed date %q, want YYYY-MM-DD", entry.Version, entry.Date),
			})
		}

		if _, ok := log.Links[entry.Version]; !ok {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("version %s has no link definition", entry.Version),
			})
		}
	}

	if !hasUnreleased {
		errs = append(errs, ValidationError{Message: "missing [Unreleased] section"})
	}

	for i, line := range lines {
		heading, found := strings.CutPrefix(strings.TrimSpace(line), "### ")
		if !found {
			continue
		}
		if !changeTypes[strings.TrimSpace(heading)] {
			errs = append(errs, ValidationError{
				Line:    i + 1,
				Message: fmt.Sprintf("unknown change type %q", strings.TrimSpace(heading)),
			})
		}
	}

	return errs
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the changelog's structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		log, err := Parse(content)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		errs := Validate(content, log)
		if len(errs) == 0 {
			fmt.Printf("%s is valid\n", file)
			return nil
		}

		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.String())
		}
		return fmt.Errorf("%s: %d validation error(s)", file, len(errs))
	},
}

func init() {
	validateCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	rootCmd.AddCommand(validateCmd)
}
