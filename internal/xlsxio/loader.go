// =============================================================================
// VR/VA Benefit Purchase Automation - Source Loader
// =============================================================================
//
// This module loads the named source spreadsheets into datasets. Sources are
// delivered by several teams into a handful of known folders, so each name
// is searched across the configured directories in order and the first hit
// wins. No business meaning is attached here: the first sheet's first row is
// the header, everything below is data.
//
// A missing or unreadable source is not an error at this boundary - the
// loader logs and returns an empty dataset, and the affected feature
// degrades downstream. Whether an empty roster is fatal is the engine's
// decision, not the loader's.
//
// =============================================================================

package xlsxio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/hrops/vrcalc/internal/dataset"
)

// Loader locates and reads named xlsx sources from a list of search
// directories.
type Loader struct {
	dirs []string
}

// NewLoader returns a loader searching the given directories in order.
func NewLoader(dirs ...string) *Loader {
	return &Loader{dirs: dirs}
}

// Load reads the named source into a dataset. The search stops at the first
// directory containing the file. Missing files and read errors both yield
// an empty dataset.
func (l *Loader) Load(name string) dataset.Dataset {
	for _, dir := range l.dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		ds, err := readFile(path)
		if err != nil {
			logrus.WithField("file", path).WithError(err).Warn("failed to read source")
			return dataset.Dataset{}
		}
		logrus.WithFields(logrus.Fields{
			"file": path,
			"rows": ds.RowCount(),
		}).Debug("source loaded")
		return ds
	}
	logrus.WithField("file", name).Warn("source not found")
	return dataset.Dataset{}
}

// readFile reads the first sheet of an xlsx file into a dataset.
func readFile(path string) (dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataset.Dataset{}, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return dataset.Dataset{}, nil
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return dataset.Dataset{}, err
	}
	if len(rows) == 0 {
		return dataset.Dataset{}, nil
	}

	ds := dataset.Dataset{Columns: rows[0]}
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
