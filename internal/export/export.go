// Package export locates the newest health export archive and decodes the
// XML document inside it into raw record and workout elements.
package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JonnyWalker81/healthsync/internal/models"
)

// xmlPath is where the export document lives inside the archive.
const xmlPath = "apple_health_export/export.xml"

// FindLatestArchive returns the export archive to process from dir.
// Archives are export*.zip files ordered by name; with a single archive that
// one is used, with several the second-newest is used because the newest may
// still be downloading.
func FindLatestArchive(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading downloads directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "export") || !strings.HasSuffix(name, ".zip") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	switch len(names) {
	case 0:
		return "", fmt.Errorf("no export archive found in %s", dir)
	case 1:
		return filepath.Join(dir, names[0]), nil
	default:
		return filepath.Join(dir, names[len(names)-2]), nil
	}
}

// Read opens the zip archive at path and decodes the export document inside.
func Read(path string) (*models.Export, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer zr.Close()

	file, err := zr.Open(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s in archive: %w", xmlPath, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes an export XML document. Only Record and Workout elements are
// extracted; everything else in the document is skipped.
func Parse(r io.Reader) (*models.Export, error) {
	dec := xml.NewDecoder(r)
	var ex models.Export

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding export document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "Record":
			var rec models.RawRecord
			if err := dec.DecodeElement(&rec, &start); err != nil {
				return nil, fmt.Errorf("decoding record element: %w", err)
			}
			ex.Records = append(ex.Records, rec)
		case "Workout":
			var w models.RawWorkout
			if err := dec.DecodeElement(&w, &start); err != nil {
				return nil, fmt.Errorf("decoding workout element: %w", err)
			}
			ex.Workouts = append(ex.Workouts, w)
		}
	}

	return &ex, nil
}
