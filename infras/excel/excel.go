package excel

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"hotelgen/infras/otel"
	"hotelgen/shared/constant"
	"hotelgen/shared/failure"
)

const (
	tempPattern = ".hotelgen-*.xlsx"
	fileMode    = 0o644
	headerCell  = "A1"
	firstRow    = 2
)

// Sheet is one table written as a named worksheet; Headers become row 1.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Properties are the workbook document properties.
type Properties struct {
	Title      string
	Creator    string
	Identifier string
	Created    time.Time
}

// SheetSummary describes a worksheet read back from disk.
type SheetSummary struct {
	Name     string
	Headers  []string
	RowCount int
}

type Excel interface {
	Write(ctx context.Context, path string, props Properties, sheets ...Sheet) error
	Read(ctx context.Context, path string) ([]SheetSummary, error)
}

type excelImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Excel {
	return &excelImpl{
		otel: otel,
	}
}

// Write renders sheets in order into a temp file next to path and renames it
// into place, so path only ever holds a complete workbook.
func (e *excelImpl) Write(ctx context.Context, path string, props Properties, sheets ...Sheet) (err error) {
	_, scope := e.otel.NewScope(ctx, constant.OtelExcelScopeName, constant.OtelExcelScopeName+".Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelAttrPath: path,
		"sheets":              len(sheets),
	})

	if len(sheets) == 0 {
		return failure.ExportError(errors.New("no sheets to write"))
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close workbook")
		}
	}()

	defaultSheet := f.GetSheetName(0)

	for i, sheet := range sheets {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, sheet.Name)
		} else {
			_, err = f.NewSheet(sheet.Name)
		}

		if err != nil {
			return failure.ExportError(fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err))
		}

		if err = writeSheet(f, sheet); err != nil {
			return failure.ExportError(err)
		}

		log.Debug().Str("sheet", sheet.Name).Int(constant.OtelAttrRows, len(sheet.Rows)).Msg("sheet written")
	}

	f.SetActiveSheet(0)

	err = f.SetDocProps(&excelize.DocProperties{
		Title:      props.Title,
		Creator:    props.Creator,
		Identifier: props.Identifier,
		Created:    props.Created.Format(constant.TimestampFormat),
	})
	if err != nil {
		return failure.ExportError(fmt.Errorf("failed to set document properties: %w", err))
	}

	if err = save(f, path); err != nil {
		return failure.ExportError(err)
	}

	return nil
}

func (e *excelImpl) Read(ctx context.Context, path string) (res []SheetSummary, err error) {
	_, scope := e.otel.NewScope(ctx, constant.OtelExcelScopeName, constant.OtelExcelScopeName+".Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}

		summary := SheetSummary{Name: name}
		if len(rows) > 0 {
			summary.Headers = rows[0]
			summary.RowCount = len(rows) - 1
		}

		res = append(res, summary)
	}

	return res, nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	sw, err := f.NewStreamWriter(sheet.Name)
	if err != nil {
		return fmt.Errorf("failed to open stream writer for %s: %w", sheet.Name, err)
	}

	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}

	if err := sw.SetRow(headerCell, header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet.Name, err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+firstRow)
		if err != nil {
			return fmt.Errorf("failed to address %s row %d: %w", sheet.Name, i+1, err)
		}

		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet.Name, i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet %s: %w", sheet.Name, err)
	}

	return nil
}

// writable fails when path exists but cannot be opened for writing.
func writable(path string) error {
	target, err := os.OpenFile(path, os.O_WRONLY, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("workbook target %s is not writable: %w", path, err)
	}

	return target.Close()
}

func save(f *excelize.File, path string) (err error) {
	if err = writable(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create workbook in %s: %w", dir, err)
	}

	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = f.Write(tmp); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write workbook: %w", err)
	}

	if err = tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to set workbook permissions: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to sync workbook: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move workbook to %s: %w", path, err)
	}

	return nil
}
