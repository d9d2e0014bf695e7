package event

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrWeekdayOutOfRange is returned by WeekdayName for days outside [0, 6]
	ErrWeekdayOutOfRange = errors.New("weekday must be between 0 and 6")
	// ErrMonthOutOfRange is returned by MonthName for months outside [1, 12]
	ErrMonthOutOfRange = errors.New("month must be between 1 and 12")
)

// Fixed Spanish name tables. Generating these through locale machinery
// breaks on runtime images without es_ES installed.
var weekdayNames = [7]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

var monthNames = [12]string{
	"Enero",
	"Febrero",
	"Marzo",
	"Abril",
	"Mayo",
	"Junio",
	"Julio",
	"Agosto",
	"Septiembre",
	"Octubre",
	"Noviembre",
	"Diciembre",
}

// WeekdayName returns the Spanish name for a weekday. Day 0 is Monday,
// matching the table order used across the calendar.
func WeekdayName(day int) (string, error) {
	if day < 0 || day > 6 {
		return "", ErrWeekdayOutOfRange
	}
	return weekdayNames[day], nil
}

// MonthName returns the Spanish name for a month, from 1 (Enero) to 12
// (Diciembre).
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrMonthOutOfRange
	}
	return monthNames[month-1], nil
}

// Describe renders a date as "<weekday> <day> de <month>", e.g.
// "Sábado 12 de Marzo".
func Describe(t time.Time) string {
	// time.Weekday counts from Sunday; the tables count from Monday.
	weekday, _ := WeekdayName((int(t.Weekday()) + 6) % 7)
	month, _ := MonthName(int(t.Month()))
	return fmt.Sprintf("%s %d de %s", weekday, t.Day(), month)
}
