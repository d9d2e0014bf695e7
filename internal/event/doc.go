// Package event provides the domain model for calendar events pulled from
// the group's Notion calendar.
//
// The package handles event representation, validated date ranges and
// Spanish date descriptions. Weekday and month names come from fixed tables
// instead of the host locale, so output is identical no matter which locales
// the runtime image ships with.
package event
