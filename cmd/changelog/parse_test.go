package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validChangelog = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

## [0.2.0] - 2026-08-30

### Added
- Bulk dataset import command

### Fixed
- Coordinate truncation on derived identifiers

## [0.1.0] - 2026-06-01

### Added
- Initial release

[Unreleased]: https://example.com/compare/v0.2.0...HEAD
[0.2.0]: https://example.com/compare/v0.1.0...v0.2.0
[0.1.0]: https://example.com/releases/v0.1.0
`

func TestParse(t *testing.T) {
	log, err := Parse([]byte(validChangelog))
	require.NoError(t, err)

	require.Len(t, log.Entries, 3)

	assert.Equal(t, "Unreleased", log.Entries[0].Version)
	assert.Empty(t, log.Entries[0].Date)
	assert.Empty(t, log.Entries[0].Content)

	assert.Equal(t, "0.2.0", log.Entries[1].Version)
	assert.Equal(t, "2026-08-30", log.Entries[1].Date)
	assert.Contains(t, log.Entries[1].Content, "Bulk dataset import command")
	assert.Contains(t, log.Entries[1].Content, "### Fixed")

	assert.Equal(t, "0.1.0", log.Entries[2].Version)
	assert.Equal(t, "2026-06-01", log.Entries[2].Date)

	assert.Equal(t, "https://example.com/releases/v0.1.0", log.Links["0.1.0"])
}

func TestFindVersion(t *testing.T) {
	log, err := Parse([]byte(validChangelog))
	require.NoError(t, err)

	testCases := []struct {
		name    string
		version string
		want    string
	}{
		{name: "exact", version: "0.1.0", want: "0.1.0"},
		{name: "v prefix", version: "v0.2.0", want: "0.2.0"},
		{name: "unreleased", version: "Unreleased", want: "Unreleased"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry := log.FindVersion(tc.version)
			require.NotNil(t, entry)
			assert.Equal(t, tc.want, entry.Version)
		})
	}

	assert.Nil(t, log.FindVersion("9.9.9"))
}

func TestSplitVersionHeading(t *testing.T) {
	testCases := []struct {
		heading     string
		wantVersion string
		wantDate    string
	}{
		{heading: "[1.2.3] - 2026-01-02", wantVersion: "1.2.3", wantDate: "2026-01-02"},
		{heading: "[Unreleased]", wantVersion: "Unreleased", wantDate: ""},
		{heading: "1.2.3 - 2026-01-02", wantVersion: "1.2.3", wantDate: "2026-01-02"},
		{heading: "1.2.3", wantVersion: "1.2.3", wantDate: ""},
	}
	for _, tc := range testCases {
		version, date := splitVersionHeading(tc.heading)
		assert.Equal(t, tc.wantVersion, version)
		assert.Equal(t, tc.wantDate, date)
	}
}

func TestStripLinkDefinitions(t *testing.T) {
	content := "### Added\n- A thing\n\n[0.1.0]: https://example.com/releases/v0.1.0"

	stripped := stripLinkDefinitions(content)

	assert.Equal(t, "### Added\n- A thing", stripped)
}
