// Package daterange renders a pair of instants as the shortest unambiguous
// human-readable description of the interval between them.
//
// A range is first classified into one of eight shapes (whole year, whole
// quarter, whole months, across years, across months, across days, part of a
// day, whole day) and then rendered with that shape's template:
//
//	2023                      whole year
//	Q1 2023                   whole quarter
//	Jan - Feb 2023            whole months
//	Jan 1 '22 - Jan 20 '23    across years
//	Jan 3 - Apr 20            across months
//	Jan 1 - 12                across days
//	Jan 1, 12:11am - 2:30pm   part of a day
//	Sun, Jan 1                whole day
//
// The year is dropped when the range falls in the reference year ("today"),
// and the date is dropped entirely for a partial range on the reference day.
// Times of day appear only for endpoints that are not on a day boundary.
//
// Calendar boundaries are always computed in the location of the from
// instant. A timezone option changes how clock times read, never which shape
// a range has.
package daterange
