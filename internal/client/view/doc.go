// Package view turns EasyPost records into display rows and renders them as
// terminal tables.
//
// The row builders (AddressRow, ParcelRow, ShipmentRow, RateRow) and the sort
// helpers are pure; Printer owns the output writer and the lipgloss renderer.
package view
