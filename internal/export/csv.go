package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/theirongolddev/exptrack/internal/model"
)

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, records []model.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range records {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Amount.String(),
			e.Category,
			e.Date,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
