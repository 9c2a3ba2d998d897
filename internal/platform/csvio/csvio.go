// Package csvio writes and reads tabular exports with csvutil.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jszwec/csvutil"
	"github.com/labstack/echo/v4"
)

// MIMEType is the content type of every export.
const MIMEType = "text/csv; charset=utf-8"

// Encode writes rows as CSV to w, header first. rows must be a slice of
// structs tagged with `csv`. An empty slice still writes the header.
func Encode[T any](w io.Writer, rows []T) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(rows) == 0 {
		var zero T
		if err := enc.EncodeHeader(zero); err != nil {
			return fmt.Errorf("failed to encode CSV header: %w", err)
		}
	} else if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// Decode reads every row of r into a slice of T.
func Decode[T any](r io.Reader) ([]T, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var rows []T
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}
	return rows, nil
}

// Attachment answers c with rows as a downloadable CSV named filename.
func Attachment[T any](c echo.Context, filename string, rows []T) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return Send(c, filename, buf.Bytes())
}

// Send answers c with an already encoded CSV body named filename.
func Send(c echo.Context, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, MIMEType, body)
}
