package locale

import "golang.org/x/text/language"

var (
	englishMonths = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	englishShortMonths = [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	englishShortWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// table is ordered; the first entry is the matcher's fallback.
var table = []*Locale{
	{
		id:            "en-US",
		tag:           language.AmericanEnglish,
		months:        englishMonths,
		shortMonths:   englishShortMonths,
		shortWeekdays: englishShortWeekdays,
		hour12:        true,
		am:            "AM",
		pm:            "PM",
	},
	{
		id:            "en-GB",
		tag:           language.BritishEnglish,
		months:        englishMonths,
		shortMonths:   englishShortMonths,
		shortWeekdays: englishShortWeekdays,
	},
	{
		id:            "en-AU",
		tag:           language.MustParse("en-AU"),
		months:        englishMonths,
		shortMonths:   englishShortMonths,
		shortWeekdays: englishShortWeekdays,
		hour12:        true,
		am:            "am",
		pm:            "pm",
	},
	{
		id:  "de",
		tag: language.German,
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		shortMonths: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		shortWeekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	{
		id:  "fr",
		tag: language.French,
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		shortMonths: [12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		shortWeekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	},
	{
		id:  "es",
		tag: language.Spanish,
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		shortMonths: [12]string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic",
		},
		shortWeekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
	{
		id:  "it",
		tag: language.Italian,
		months: [12]string{
			"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
		},
		shortMonths: [12]string{
			"gen", "feb", "mar", "apr", "mag", "giu",
			"lug", "ago", "set", "ott", "nov", "dic",
		},
		shortWeekdays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	},
}
