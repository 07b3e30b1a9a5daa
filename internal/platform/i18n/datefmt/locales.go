package datefmt

import (
	"strconv"
	"time"
)

var englishMonths = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishStrategy = strategy{
	present: "Present",
	month: func(ym YearMonth, style Style) string {
		name := englishMonths[ym.Month-time.January]
		if style == Short {
			name = name[:3]
		}
		return name + " " + strconv.Itoa(ym.Year)
	},
	duration: func(months int) string {
		switch {
		case months < 1:
			return "Less than a month"
		case months < 12:
			return plural(months, "month")
		}
		years, rest := months/12, months%12
		if rest == 0 {
			return plural(years, "year")
		}
		return plural(years, "year") + " " + plural(rest, "month")
	},
}

// Chinese months are numeric, so both styles render identically.
var chineseStrategy = strategy{
	present: "至今",
	month: func(ym YearMonth, _ Style) string {
		return strconv.Itoa(ym.Year) + "年" + strconv.Itoa(int(ym.Month)) + "月"
	},
	duration: func(months int) string {
		switch {
		case months < 1:
			return "不到一个月"
		case months < 12:
			return strconv.Itoa(months) + "个月"
		}
		years, rest := months/12, months%12
		if rest == 0 {
			return strconv.Itoa(years) + "年"
		}
		return strconv.Itoa(years) + "年" + strconv.Itoa(rest) + "个月"
	},
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
