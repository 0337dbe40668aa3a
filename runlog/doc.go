// Package runlog persists the per-generation elite trace produced by ga.Run.
//
// Each record is one row: seed, generation index, elite fitness and elite
// route. Two formats are supported:
//
//   - CSV  (OpenCSV / NewCSV): appends to the file, writing a header only
//     when the file is empty. Rows are flushed as they are written.
//   - XLSX (OpenXLSX): one "generations" sheet with a header row and an extra
//     column of area initials. The workbook is saved on Close.
//
// Open picks the format from the file extension. All sinks are safe for
// concurrent use, so one sink can collect the runs of a grid search.
package runlog
