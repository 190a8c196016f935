package pipeline

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/blake2b"

	"perfgen/pkg/models"
)

// Fingerprint returns the hex BLAKE2b-256 digest of every table's name,
// header and cell values. Two runs with the same seed and settings produce
// the same fingerprint.
func Fingerprint(tables []models.Table) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	for _, t := range tables {
		fmt.Fprintf(h, "table:%s\n", t.Name)
		for _, c := range t.Columns {
			fmt.Fprintf(h, "%s\x1f", c)
		}
		io.WriteString(h, "\n")
		for _, row := range t.Rows {
			for _, v := range row {
				writeCell(h, v)
				io.WriteString(h, "\x1f")
			}
			io.WriteString(h, "\n")
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func writeCell(w io.Writer, v interface{}) {
	switch x := v.(type) {
	case time.Time:
		io.WriteString(w, x.Format(models.DateLayout))
	case float64:
		fmt.Fprintf(w, "%.2f", x)
	default:
		fmt.Fprint(w, x)
	}
}
