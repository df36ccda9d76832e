package utils

import "time"

const dateLayout = "2006-01-02"

// TodayDate returns the local calendar date as YYYY-MM-DD.
func TodayDate() string {
	return time.Now().Format(dateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// FormatDisplayDate renders a date for the dashboard header: "Today",
// "Yesterday", or a short date ("Jan 2", with the year when it differs
// from the current one).
func FormatDisplayDate(dateStr string) string {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	now := time.Now()
	switch dateStr {
	case now.Format(dateLayout):
		return "Today"
	case now.AddDate(0, 0, -1).Format(dateLayout):
		return "Yesterday"
	}
	if d.Year() != now.Year() {
		return d.Format("Jan 2, 2006")
	}
	return d.Format("Jan 2")
}
