package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// utf8BOM lets spreadsheet applications detect UTF-8 names.
const utf8BOM = "\ufeff"

// CSVHeader is the first record written by CSV.
var CSVHeader = []string{"round", "group", "first", "second", "third"}

// CSV writes every committed round of s, one record per group. When bom is
// true the output starts with a UTF-8 byte order mark.
func CSV(w io.Writer, s Snapshot, bom bool) error {
	if bom {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return fmt.Errorf("write csv bom: %w", err)
		}
	}

	var cw = csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	var (
		r, i  int
		cells [3]string
	)
	for r = range s.Rounds {
		for i = range s.Rounds[r].Groups {
			cells = groupCells(s.Rounds[r].Groups[i])
			if err := cw.Write([]string{
				strconv.Itoa(r + 1), strconv.Itoa(i + 1), cells[0], cells[1], cells[2],
			}); err != nil {
				return fmt.Errorf("write csv round %d: %w", r+1, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
