// Package report exports the aggregated page-view tables to an Excel
// workbook.
package report
